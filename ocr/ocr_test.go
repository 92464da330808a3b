//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNG creates a simple PNG image with a block pattern for
// testing. OCR might or might not recognize anything in it.
func createTestPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))

	// Fill with white
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	// Draw some black pixels (simple pattern)
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeImage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	pngData := createTestPNG(100, 50)

	// We don't check the actual text since our test image is just a
	// rectangle; we just verify the method doesn't crash.
	_, err = client.RecognizeImage(pngData)
	if err != nil {
		t.Errorf("RecognizeImage failed: %v", err)
	}
}

func TestRecognizeWords(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	pngData := createTestPNG(100, 50)

	// The block pattern yields no guaranteed words; positions that do
	// come back must land inside the scaled page area.
	words, err := client.RecognizeWords(pngData, 2)
	if err != nil {
		t.Fatalf("RecognizeWords failed: %v", err)
	}
	for _, w := range words {
		if w.Position.X < 0 || w.Position.X > 50 || w.Position.Y < 0 || w.Position.Y > 25 {
			t.Errorf("word %q at %+v outside scaled page bounds", w.Text, w.Position)
		}
		if w.Text == "" {
			t.Error("blank word survived filtering")
		}
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// English should always be available
	err = client.SetLanguage("eng")
	if err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestClose(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	// First close should succeed
	err = client.Close()
	if err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Second close should also be safe (nil client)
	client.client = nil
	err = client.Close()
	if err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}
