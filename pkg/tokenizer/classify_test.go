package tokenizer

import "testing"

func TestDetectType(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{' ', Space},
		{'5', Number},
		{'a', Word},
		{'A', Word},
		{'.', Punctuation},
		{'$', Currency},
		{'+', Symbol},
		{'😀', Emoticon},
		{'✂', Pictogram},
	}
	for _, c := range cases {
		if got := detectType(c.r); got != c.want {
			t.Errorf("detectType(%q) = %s, want %s", c.r, got, c.want)
		}
	}
}

func TestIsBOSLatinUppercase(t *testing.T) {
	if !isBOS('H') {
		t.Error("expected 'H' to be a BOS candidate")
	}
	if isBOS('h') {
		t.Error("lowercase should not be a BOS candidate")
	}
}

func TestIsBOSGreekUppercase(t *testing.T) {
	if !isBOS('Α') { // Greek capital alpha
		t.Error("expected Greek capital alpha to be a BOS candidate")
	}
}

func TestIsBOSDigitIsNot(t *testing.T) {
	if isBOS('5') {
		t.Error("digits are never BOS candidates")
	}
}

func TestIsEmoticonAndIsPictogramDisjoint(t *testing.T) {
	if !isEmoticon('😀') {
		t.Error("expected U+1F600 to be an emoticon")
	}
	if isPictogram('😀') {
		t.Error("emoticon block should not also be classified as pictogram")
	}
	if !isPictogram('✂') {
		t.Error("expected U+2702 (scissors) to be a pictogram")
	}
}
