package main

import "testing"

func TestRunAllVectorsPass(t *testing.T) {
	if code := run(nil); code != 0 {
		t.Fatalf("run(nil) = %d, want 0", code)
	}
}

func TestRunVersionFlag(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Fatalf("run(--version) = %d, want 0", code)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if code := run([]string{"--bogus"}); code != 2 {
		t.Fatalf("run(--bogus) = %d, want 2", code)
	}
}

func TestIndividualVectors(t *testing.T) {
	for _, v := range vectors {
		if err := v.run(false); err != nil {
			t.Errorf("%s: %v", v.name, err)
		}
	}
}
