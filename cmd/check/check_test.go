/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package check

import (
	"bytes"
	"errors"
	"testing"

	"bennypowers.dev/relativize/walker"
)

func TestDiff(t *testing.T) {
	before := "import A from '~/a'\nconst x = 1\nimport B from '@/b'\n"
	after := "import A from './a'\nconst x = 1\nimport B from './b'\n"

	got := Diff("/proj/src/x.ts", before, after)
	want := `--- /proj/src/x.ts
+++ /proj/src/x.ts
-import A from '~/a'
+import A from './a'
-import B from '@/b'
+import B from './b'
`
	if got != want {
		t.Errorf("Diff() =\n%s\nwant\n%s", got, want)
	}
}

func TestDiff_NoTrailingNewline(t *testing.T) {
	got := Diff("a.ts", "import '~/a'", "import './a'")
	want := "--- a.ts\n+++ a.ts\n-import '~/a'\n+import './a'\n"
	if got != want {
		t.Errorf("Diff() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	t.Run("converged", func(t *testing.T) {
		var buf bytes.Buffer
		err := report(&buf, &walker.Result{Scanned: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "3 files checked, nothing to rewrite\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("pending changes", func(t *testing.T) {
		var buf bytes.Buffer
		err := report(&buf, &walker.Result{
			Scanned: 2,
			Changes: []walker.Change{{Path: "a.ts", Before: "'~/a'\n", After: "'./a'\n"}},
		})
		if !errors.Is(err, ErrNotConverged) {
			t.Fatalf("expected ErrNotConverged, got %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("+'./a'\n")) {
			t.Errorf("expected diff in output, got %q", buf.String())
		}
	})
}
