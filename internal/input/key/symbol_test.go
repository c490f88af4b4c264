package key

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveSymbols(t *testing.T) {
	tests := []struct {
		arg  string
		want Key
	}{
		{"{alt}", KeyAlt},
		{"{backspace}", KeyBackspace},
		{"{capslock}", KeyCapsLock},
		{"{control}", KeyControl},
		{"{delete}", KeyDelete},
		{"{downarrow}", KeyDownArrow},
		{"{end}", KeyEnd},
		{"{escape}", KeyEscape},
		{"{f1}", KeyF1},
		{"{f10}", KeyF10},
		{"{f12}", KeyF12},
		{"{home}", KeyHome},
		{"{leftarrow}", KeyLeftArrow},
		{"{pagedown}", KeyPageDown},
		{"{pageup}", KeyPageUp},
		{"{return}", KeyReturn},
		{"{rightarrow}", KeyRightArrow},
		{"{shift}", KeyShift},
		{"{space}", KeySpace},
		{"{tab}", KeyTab},
		{"{uparrow}", KeyUpArrow},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Resolve(tt.arg)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.arg, err)
			}
			if got != Named(tt.want) {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.arg, got, Named(tt.want))
			}
		})
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	for _, arg := range []string{"{return}", "{Return}", "{RETURN}", "{rEtUrN}"} {
		got, err := Resolve(arg)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", arg, err)
		}
		if got != Named(KeyReturn) {
			t.Errorf("Resolve(%q) = %#v, want Return", arg, got)
		}
	}
}

func TestResolveMetaAliases(t *testing.T) {
	for _, arg := range []string{"{command}", "{meta}", "{super}", "{windows}"} {
		got := MustResolve(arg)
		if got != Named(KeyMeta) {
			t.Errorf("Resolve(%q) = %#v, want Meta", arg, got)
		}
	}

	opt := MustResolve("{option}")
	if opt == MustResolve("{alt}") {
		t.Error("{option} and {alt} must resolve to distinct keys")
	}
	if opt != Named(KeyOption) {
		t.Errorf("Resolve({option}) = %#v, want Option", opt)
	}
}

func TestResolveLayoutCharacter(t *testing.T) {
	tests := []struct {
		arg  string
		want rune
	}{
		{"a", 'a'},
		{"A", 'A'},
		{"1", '1'},
		{"@", '@'},
		{"é", 'é'},
		// Only the first character of a multi-character argument is used.
		{"ab", 'a'},
		{"hello", 'h'},
		// Unknown or malformed symbols fall back to their first glyph.
		{"{enter}", '{'},
		{"{return", '{'},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Resolve(tt.arg)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.arg, err)
			}
			if got != Layout(tt.want) {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.arg, got, Layout(tt.want))
			}
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve("")
	if !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Resolve(\"\") error = %v, want ErrEmptyKey", err)
	}
}

func TestMustResolvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustResolve(\"\") should panic")
		}
	}()
	MustResolve("")
}

func TestSymbols(t *testing.T) {
	syms := Symbols()
	if len(syms) != 35 {
		t.Errorf("len(Symbols()) = %d, want 35", len(syms))
	}
	for i, sym := range syms {
		if !strings.HasPrefix(sym, "{") || !strings.HasSuffix(sym, "}") {
			t.Errorf("symbol %q is not brace-delimited", sym)
		}
		if !IsSymbol(sym) || !IsSymbol(strings.ToUpper(sym)) {
			t.Errorf("IsSymbol(%q) = false", sym)
		}
		if i > 0 && syms[i-1] >= sym {
			t.Errorf("Symbols() not sorted at %d", i)
		}
	}
	if IsSymbol("a") {
		t.Error("IsSymbol(\"a\") should be false")
	}
}

func TestSymbolForRoundTrip(t *testing.T) {
	for _, sym := range Symbols() {
		k := MustResolve(sym).Key
		back, ok := SymbolFor(k)
		if !ok {
			t.Errorf("SymbolFor(%v) not found", k)
			continue
		}
		if MustResolve(back).Key != k {
			t.Errorf("SymbolFor(%v) = %q resolves to a different key", k, back)
		}
	}

	if _, ok := SymbolFor(KeyRune); ok {
		t.Error("SymbolFor(KeyRune) should not exist")
	}
}
