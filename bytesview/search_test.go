package bytesview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		match string
		want  int
	}{
		{"empty in empty", "", "", 0},
		{"x in empty", "", "x", -1},
		{"empty in Foo", "Foo", "", 0},
		{"F in Foo", "Foo", "F", 0},
		{"o in Foo", "Foo", "o", 1},
		{"oo in Foo", "Foo", "oo", 1},
		{"x in Foo", "Foo", "x", -1},
		{"xx in Foo", "Foo", "xx", -1},
		{"Foox in Foo", "Foo", "Foox", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCStr(tt.s).Find(FromCStr(tt.match)))
		})
	}
}

func TestRFind(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		match string
		want  int
	}{
		{"empty in empty", "", "", 0},
		{"x in empty", "", "x", -1},
		{"empty in Foo", "Foo", "", 3},
		{"F in Foo", "Foo", "F", 0},
		{"o in Foo", "Foo", "o", 2},
		{"oo in Foo", "Foo", "oo", 1},
		{"oo in Fooo", "Fooo", "oo", 2},
		{"x in Foo", "Foo", "x", -1},
		{"xx in Foo", "Foo", "xx", -1},
		{"Foox in Foo", "Foo", "Foox", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCStr(tt.s).RFind(FromCStr(tt.match)))
		})
	}
}

func TestIndexByte(t *testing.T) {
	foo := FromCStr("Foo")

	assert.Equal(t, 1, foo.IndexByte('o'))
	assert.Equal(t, -1, foo.IndexByte('x'))
	assert.Equal(t, -1, View{}.IndexByte('x'))
}

func TestFindFirstOf(t *testing.T) {
	foobar := FromCStr("FooBar")

	assert.Equal(t, -1, foobar.FindFirstOf(FromCStr("")))
	assert.Equal(t, -1, foobar.FindFirstOf(FromCStr("xyz")))
	assert.Equal(t, 1, foobar.FindFirstOf(FromCStr("rao")))
}

func TestFindFirstNotOf(t *testing.T) {
	foobar := FromCStr("FooBar")

	assert.Equal(t, 0, foobar.FindFirstNotOf(FromCStr("")))
	assert.Equal(t, 1, foobar.FindFirstNotOf(FromCStr("Fxy")))
	assert.Equal(t, -1, foobar.FindFirstNotOf(FromCStr("FoBar")))
}

func TestFindLastOf(t *testing.T) {
	foobar := FromCStr("FooBar")

	assert.Equal(t, -1, foobar.FindLastOf(FromCStr("")))
	assert.Equal(t, -1, foobar.FindLastOf(FromCStr("xyz")))
	assert.Equal(t, 5, foobar.FindLastOf(FromCStr("rao")))
}

func TestFindLastNotOf(t *testing.T) {
	foobar := FromCStr("FooBar")

	assert.Equal(t, 5, foobar.FindLastNotOf(FromCStr("")))
	assert.Equal(t, 5, foobar.FindLastNotOf(FromCStr("xyz")))
	assert.Equal(t, 3, foobar.FindLastNotOf(FromCStr("rao")))
	assert.Equal(t, -1, foobar.FindLastNotOf(FromCStr("FoBar")))
}

func BenchmarkFindFirstOf(b *testing.B) {
	haystack := FromString("the quick brown fox jumps over the lazy dog")
	accept := FromString("!?;")
	b.ResetTimer()
	for b.Loop() {
		haystack.FindFirstOf(accept)
	}
}
