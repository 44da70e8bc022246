package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(60, 20)

	if s.Width() != 60 {
		t.Errorf("Width() = %d, expected 60", s.Width())
	}
	if s.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', "ball")
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5); c.Style != "ball" {
		t.Errorf("GetCell(5, 5).Style = %q, expected \"ball\"", c.Style)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', "")  // Should not panic
	s.Set(100, 0, 'A', "") // Should not panic
	s.Set(0, -1, 'A', "")  // Should not panic
	s.Set(0, 100, 'A', "") // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewBox(0, 0, 10, 10), 'X', "paddle")

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Style != "" {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", "score")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", "") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewBox(2, 2, 5, 3), '#', "paddle")

	for x := 2; x < 5; x++ {
		if s.Get(x, 2) != '#' {
			t.Errorf("DrawBox: expected '#' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}

	// Right and bottom edges are exclusive
	if s.Get(5, 2) != ' ' {
		t.Error("DrawBox should not paint the right edge column")
	}
	if s.Get(2, 3) != ' ' {
		t.Error("DrawBox should not paint the bottom edge row")
	}
}

func TestScreenDrawBoxDegenerate(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewBox(1, 1, 1, 1), 'o', "")

	if s.Get(1, 1) != 'o' {
		t.Error("Zero-size box should still occupy one cell")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", "")
	s.DrawText(0, 1, "BBBBB", "")
	s.DrawText(0, 2, "CCCCC", "")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", "")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
