package korean

import "testing"

func TestDecomposeSyllable(t *testing.T) {
	tests := []struct {
		input rune
		want  string
	}{
		{'가', "가"},
		{'한', "한"},
		{'꿈', "꿈"},
		{'위', "위"},
		{'힣', "힣"},
	}
	for _, tt := range tests {
		got := string(DecomposeSyllable(tt.input))
		if got != tt.want {
			t.Errorf("DecomposeSyllable(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecomposeSyllableNonSyllable(t *testing.T) {
	for _, r := range []rune{'a', '1', 'ㄱ', 'ㅏ', '中', 0xABFF} {
		if got := DecomposeSyllable(r); got != nil {
			t.Errorf("DecomposeSyllable(%q) = %q, want nil", r, string(got))
		}
	}
}

// 全音节往返: 拆解后重组必须恢复原音节
func TestDecomposeComposeRoundTrip(t *testing.T) {
	for r := rune(syllableBase); r <= syllableEnd; r++ {
		jamo := DecomposeSyllable(r)
		if len(jamo) != 2 && len(jamo) != 3 {
			t.Fatalf("DecomposeSyllable(%q) 产生 %d 个字母", r, len(jamo))
		}
		back, ok := ComposeJamo(jamo)
		if !ok || back != r {
			t.Fatalf("ComposeJamo(DecomposeSyllable(%q)) = %q, ok=%v", r, back, ok)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		lead, vowel, tail rune
		want              rune
		ok                bool
	}{
		{'ㄱ', 'ㅏ', 0, '가', true},
		{'ㅎ', 'ㅏ', 'ㄴ', '한', true},
		{'ㄲ', 'ㅜ', 'ㅁ', '꿈', true},
		{'ㄳ', 'ㅏ', 0, 0, false},  // 复合终声不能作声母
		{'ㄱ', 'ㄴ', 0, 0, false},  // 辅音不能作中声
		{'ㄱ', 'ㅏ', 'ㄸ', 0, false}, // ㄸ 不是合法终声
	}
	for _, tt := range tests {
		got, ok := Compose(tt.lead, tt.vowel, tt.tail)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Compose(%q, %q, %q) = %q, %v; want %q, %v",
				tt.lead, tt.vowel, tt.tail, got, ok, tt.want, tt.ok)
		}
	}
}

// 孤立元音冠以哑辅音 ㅇ 后拆解
func TestDecomposeIsolatedVowel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ㅏ", "아"}, // 아
		{"ㅣ", "이"}, // 이
		{"ㅗ", "오"}, // 오
	}
	for _, tt := range tests {
		if got := Decompose(tt.input); got != tt.want {
			t.Errorf("Decompose(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// 孤立辅音按名称读出
func TestDecomposeIsolatedConsonant(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"ㄱ", "기역"},
		{"ㄴ", "니은"},
		{"ㄷ", "디귿"},
		{"ㅅ", "시옷"},
		{"ㅁ", "미음"},
		{"ㅎ", "히읗"},
		{"ㄲ", "쌍기역"},
		{"ㅆ", "쌍시옷"},
	}
	for _, tt := range tests {
		want := Decompose(tt.name)
		got := Decompose(tt.input)
		if got != want {
			t.Errorf("Decompose(%q) = %q, want %q (%s)", tt.input, got, want, tt.name)
		}
		if len([]rune(got)) < 2 {
			t.Errorf("Decompose(%q) 长度 %d, 至少应为 2", tt.input, len([]rune(got)))
		}
	}
}

func TestDecomposePassThrough(t *testing.T) {
	if got := Decompose("abc 123!"); got != "abc 123!" {
		t.Errorf("Decompose(%q) = %q", "abc 123!", got)
	}
}
