package diagram

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildFigure(t *testing.T) *Figure {
	t.Helper()
	fig, err := Build(normalizedTable(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return fig
}

func TestExportWritesAllThreeFormats(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering three full figures is slow")
	}
	fig := buildFigure(t)
	dir := t.TempDir()
	if err := Export(fig, dir, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, format := range Formats {
		path := filepath.Join(dir, BaseName+"."+format)
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
	// the raster preview must be a decodable PNG
	f, err := os.Open(filepath.Join(dir, BaseName+".png"))
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode png: %v", err)
	}
}

// The panel titles are bold and the citation box is italic; the PDF backend
// registers faces under fpdf style "" and must select them the same way, so a
// render that reaches either emphasis face proves the font wiring is sound.
func TestWritePDFRendersEmphasisText(t *testing.T) {
	var buf bytes.Buffer
	if err := buildFigure(t).WritePDF(&buf); err != nil {
		t.Fatalf("pdf render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf output")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	fig := buildFigure(t)
	err := Export(fig, t.TempDir(), []string{"svg"})
	if err == nil || !strings.Contains(err.Error(), `unknown output format "svg"`) {
		t.Fatalf("want unknown-format error, got %v", err)
	}
}

func TestExportUnwritableDir(t *testing.T) {
	fig := buildFigure(t)
	err := Export(fig, filepath.Join(t.TempDir(), "missing", "dir"), []string{"eps"})
	if err == nil {
		t.Fatal("want error for missing output directory")
	}
}

// stripVolatile drops the header comment lines an EPS writer may stamp with
// the render time; everything else must be byte-identical across runs.
func stripVolatile(b []byte) []byte {
	var out [][]byte
	for _, line := range bytes.Split(b, []byte("\n")) {
		if bytes.Contains(line, []byte("CreationDate")) {
			continue
		}
		out = append(out, line)
	}
	return bytes.Join(out, []byte("\n"))
}

func TestEPSOutputDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := buildFigure(t).WriteEPS(&a); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := buildFigure(t).WriteEPS(&b); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(stripVolatile(a.Bytes()), stripVolatile(b.Bytes())) {
		t.Fatal("EPS output differs between renders of identical data")
	}
}
