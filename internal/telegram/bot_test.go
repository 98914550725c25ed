package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestIsPDF(t *testing.T) {
	cases := []struct {
		name string
		mime string
		want bool
	}{
		{"report.pdf", "", true},
		{"REPORT.PDF", "", true},
		{"scan", "application/pdf", true},
		{"notes.docx", "", false},
		{"photo.png", "image/png", false},
		{"", "", false},
	}

	for _, c := range cases {
		doc := &tgbotapi.Document{FileName: c.name, MimeType: c.mime}
		if got := isPDF(doc); got != c.want {
			t.Errorf("isPDF(%q, %q) = %v, want %v", c.name, c.mime, got, c.want)
		}
	}
}

func TestArchiveName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report_images.zip"},
		{"my scan.PDF", "my scan_images.zip"},
		{"nested/dir/file.pdf", "file_images.zip"},
		{"", "document_images.zip"},
		{".pdf", "document_images.zip"},
	}

	for _, c := range cases {
		if got := archiveName(c.in); got != c.want {
			t.Errorf("archiveName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
