package bytesview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isSpace(c byte) bool { return c == ' ' }

func TestSkip(t *testing.T) {
	foobar := FromCStr("FooBar")

	assert.Equal(t, "Bar", foobar.Skip(3).String())
	assert.Equal(t, "FooBar", foobar.Skip(0).String())
	assert.Equal(t, "FooBar", foobar.Skip(-2).String())
	assert.True(t, foobar.Skip(6).IsEmpty())
	assert.True(t, foobar.Skip(100).IsEmpty())
}

func TestSkipIf(t *testing.T) {
	assert.Equal(t, "Foo", FromCStr("  Foo").SkipIf(isSpace).String())
	assert.Equal(t, "", FromCStr("   ").SkipIf(isSpace).String())
	assert.Equal(t, "Foo  ", FromCStr("Foo  ").SkipIf(isSpace).String())
}

func TestRSkipIf(t *testing.T) {
	assert.Equal(t, "Foo", FromCStr("Foo  ").RSkipIf(isSpace).String())
	assert.Equal(t, "", FromCStr("   ").RSkipIf(isSpace).String())
	assert.Equal(t, "  Foo", FromCStr("  Foo").RSkipIf(isSpace).String())
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Foo", FromCStr("  Foo  ").Trim().String())
	assert.Equal(t, "Foo Bar", FromCStr("\t\r\n\v\fFoo Bar\n").Trim().String())
	assert.Equal(t, "", FromCStr(" \t ").Trim().String())
	assert.Equal(t, "", View{}.Trim().String())
}

func TestSubstr(t *testing.T) {
	foobar := FromCStr("FooBar")
	empty := FromCStr("")

	tests := []struct {
		name string
		s    View
		pos  int
		size int
		want string
	}{
		{"empty substr(3, -1)", empty, 3, -1, ""},
		{"FooBar substr(3, 0)", foobar, 3, 0, ""},
		{"FooBar substr(3, 3)", foobar, 3, 3, "Bar"},
		{"FooBar substr(3, 10)", foobar, 3, 10, "Bar"},
		{"FooBar substr(3, -1)", foobar, 3, -1, "Bar"},
		{"FooBar substr(-3, 3)", foobar, -3, 3, "Bar"},
		{"FooBar substr(-3, 0)", foobar, -3, 0, ""},
		{"FooBar substr(-3, -1)", foobar, -3, -1, "Bar"},
		{"FooBar substr(-10, 3)", foobar, -10, 3, ""},
		{"FooBar substr(6, -1)", foobar, 6, -1, ""},
		{"FooBar substr(7, 1)", foobar, 7, 1, ""},
		{"FooBar substr(0, 3)", foobar, 0, 3, "Foo"},
		{"FooBar substr(-6, -1)", foobar, -6, -1, "FooBar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := tt.s.Substr(tt.pos, tt.size)
			assert.True(t, sub.Equal(FromCStr(tt.want)), "got %q, want %q", sub.String(), tt.want)
		})
	}
}

func TestSubstr_SharesMemory(t *testing.T) {
	buf := []byte("FooBar")
	sub := New(buf).Substr(3, 3)

	assert.True(t, &buf[3] == &sub.Bytes()[0])
}
