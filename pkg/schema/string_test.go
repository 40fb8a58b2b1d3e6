package schema_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/choreboard/pkg/schema"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

var lettersOnly = regexp.MustCompile(`^[A-Za-z ]+$`)

func titleSchema() *schema.String {
	return schema.NewString("title", "Title").
		Trim().
		Required().
		Max(10).
		Match(lettersOnly, "may only contain letters").
		Sanitize()
}

func TestStringParse(t *testing.T) {
	t.Parallel()

	s := titleSchema()

	t.Run("trims and passes", func(t *testing.T) {
		t.Parallel()
		v, err := s.Parse("  Groceries ")
		require.NoError(t, err)
		assert.Equal(t, "Groceries", v)
	})

	t.Run("nil is treated as empty", func(t *testing.T) {
		t.Parallel()
		_, err := s.Parse(nil)
		require.Error(t, err)
		assert.Equal(t, "Title is required", schema.Message(err))
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		t.Parallel()
		// Too long and wrong charset: the max rule is declared first.
		_, err := s.Parse("<b>way too long</b>")
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "title", verrs[0].Field)
		assert.Equal(t, "Title must be at most 10 characters long", verrs[0].Message)
	})

	t.Run("pattern failure", func(t *testing.T) {
		t.Parallel()
		_, err := s.Parse("a1")
		require.Error(t, err)
		assert.Equal(t, "Title may only contain letters", schema.Message(err))
	})

	t.Run("non text input", func(t *testing.T) {
		t.Parallel()
		_, err := s.Parse(42)
		require.Error(t, err)
		assert.Equal(t, "Title must be text", schema.Message(err))
	})

	t.Run("pointer input", func(t *testing.T) {
		t.Parallel()
		in := "Milk"
		v, err := s.Parse(&in)
		require.NoError(t, err)
		assert.Equal(t, "Milk", v)
	})
}

func TestStringImmutableBuilder(t *testing.T) {
	t.Parallel()

	base := schema.NewString("name", "Name").Trim().Required()
	short := base.Max(3)

	_, err := base.Parse("abcdef")
	require.NoError(t, err, "extending a schema must not change the base")

	_, err = short.Parse("abcdef")
	require.Error(t, err)

	renamed := short.Named("nick", "Nickname")
	_, err = renamed.Parse("")
	assert.Equal(t, "Nickname is required", schema.Message(err))
	assert.Equal(t, "name", short.Field())
}

func TestStringOptional(t *testing.T) {
	t.Parallel()

	s := schema.NewString("description", "Description").Trim().Max(5).Optional()

	v, err := s.Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = s.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = s.Parse("too long value")
	require.Error(t, err)
}

func TestStringTransformOrder(t *testing.T) {
	t.Parallel()

	// Length is checked after sanitizing, so markup does not count.
	s := schema.NewString("note", "Note").Sanitize().Required().Max(5)

	v, err := s.Parse("<i>hello</i>")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = s.Parse("<script>x</script>")
	require.Error(t, err)
	assert.Equal(t, "Note is required", schema.Message(err))
}

func TestStringRulesGroup(t *testing.T) {
	t.Parallel()

	s := schema.NewString("password", "Password").Rules(func(field, value string) []validator.Rule {
		return validator.PasswordRules(field, value, validator.DefaultPasswordStrength())
	})

	_, err := s.Parse("short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters long", schema.Message(err))

	_, err = s.Parse("longenough1!")
	require.Error(t, err)
	assert.Equal(t, "Password must contain at least one uppercase letter", schema.Message(err))
}
