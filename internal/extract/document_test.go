package extract

import (
	"errors"
	"testing"
)

func TestDocumentText_Txt(t *testing.T) {
	got, err := DocumentText("resume.TXT", []byte("Python developer"))
	if err != nil {
		t.Fatalf("txt extract: %v", err)
	}
	if got != "Python developer" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestDocumentText_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.png", "resume", "resume.rtf"} {
		_, err := DocumentText(name, []byte("x"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat for %q, got %v", name, err)
		}
	}
}

func TestDocumentText_CorruptPDF(t *testing.T) {
	if _, err := DocumentText("resume.pdf", []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestDocumentText_CorruptDocx(t *testing.T) {
	if _, err := DocumentText("resume.docx", []byte("not a zip")); err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
}
