package question

import (
	"regexp"
	"strings"
	"testing"
)

const testQuestions = `# boundary questions for clustering
QS 'L_Nasal' {"m-*","n-*"}

QS 'L_Vowel' {"a-*", "i-*", "u-*"}
TREE 0 {}
QS 'L_Stop' {"k-*","k-*","t-*"}
`

func TestLoad(t *testing.T) {
	qs, err := Load(strings.NewReader(testQuestions), DefaultConfig())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("parsed %d questions, want 3", len(qs))
	}

	if qs[0].Name != "Nasal" {
		t.Errorf("qs[0].Name = %q, want Nasal", qs[0].Name)
	}
	if len(qs[0].Phones) != 2 || qs[0].Phones[0] != "m" || qs[0].Phones[1] != "n" {
		t.Errorf("qs[0].Phones = %v, want [m n]", qs[0].Phones)
	}

	// space after comma is a delimiter too
	if len(qs[1].Phones) != 3 {
		t.Errorf("qs[1].Phones = %v, want 3 phones", qs[1].Phones)
	}

	// repeated item within one line is dropped
	if len(qs[2].Phones) != 2 {
		t.Errorf("qs[2].Phones = %v, want [k t]", qs[2].Phones)
	}
}

func TestLoadSkipsNonMatching(t *testing.T) {
	src := "not a question line\nQS 'L_A' {\"a-*\"}\n"
	qs, err := Load(strings.NewReader(src), DefaultConfig())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("parsed %d questions, want 1", len(qs))
	}
}

func TestLoadSkipsEmptyCaptures(t *testing.T) {
	// empty name and empty item list each yield no question
	src := "QS 'L_' {\"a-*\"}\nQS 'L_Empty' {}\n"
	qs, err := Load(strings.NewReader(src), DefaultConfig())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("parsed %d questions, want 0", len(qs))
	}
}

func TestLoadMalformedItemFatal(t *testing.T) {
	src := "QS 'L_A' {\"a-*\"}\nQS 'L_B' {bogus}\n"
	_, err := Load(strings.NewReader(src), DefaultConfig())
	if err == nil {
		t.Fatal("malformed item should abort the load")
	}
	if !strings.Contains(err.Error(), "line 2") || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name line and token: %v", err)
	}
}

func TestLoadBadLinePattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LinePattern = regexp.MustCompile(`^QS (\S+)$`) // only one capture group
	_, err := Load(strings.NewReader("QS x\n"), cfg)
	if err == nil {
		t.Fatal("line pattern with <2 capture groups should be rejected")
	}
}

func TestLoadItemPatternWithoutGroup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ItemPattern = regexp.MustCompile(`^".+-\*"$`) // matches but captures nothing
	_, err := Load(strings.NewReader("QS 'L_A' {\"a-*\"}\n"), cfg)
	if err == nil {
		t.Fatal("item pattern without a capture group should be fatal")
	}
}

func TestLoadCustomConfig(t *testing.T) {
	cfg := Config{
		LinePattern: regexp.MustCompile(`^Q:(\w+)=\[(.*)\]$`),
		ItemPattern: regexp.MustCompile(`^<(.+)>$`),
		Delimiters:  ";",
	}
	qs, err := Load(strings.NewReader("Q:Fric=[<s>;<z>]\n"), cfg)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(qs) != 1 || qs[0].Name != "Fric" {
		t.Fatalf("qs = %v, want one question Fric", qs)
	}
	if len(qs[0].Phones) != 2 || qs[0].Phones[0] != "s" || qs[0].Phones[1] != "z" {
		t.Errorf("Phones = %v, want [s z]", qs[0].Phones)
	}
}

func TestRenderLoadRoundTrip(t *testing.T) {
	q := New("Nasal")
	q.Add("n")
	q.Add("m")

	line := q.Render("QS 'L_%s' {%s}", `"%s-*"`, ",")
	qs, err := Load(strings.NewReader(line+"\n"), DefaultConfig())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(qs))
	}
	if qs[0].CanonicalKey() != q.CanonicalKey() {
		t.Errorf("round trip changed content: %q vs %q", qs[0].CanonicalKey(), q.CanonicalKey())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/questions.qs")
	if err == nil {
		t.Fatal("missing file should be an error")
	}
	if !strings.Contains(err.Error(), "open question file") {
		t.Errorf("error should identify the open failure: %v", err)
	}
}
