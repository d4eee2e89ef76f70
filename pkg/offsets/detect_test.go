package offsets

import (
	"errors"
	"testing"
)

func TestDialect_String(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{MiniOCR, "MiniOCR"},
		{HOCR, "hOCR"},
		{ALTO, "ALTO"},
		{Unknown, "Unknown"},
		{Dialect(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dialect.String(); got != tt.want {
			t.Errorf("Dialect(%d).String() = %q, want %q", tt.dialect, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Dialect
	}{
		{"miniocr with declaration", `<?xml version="1.0" encoding="utf-8"?><ocr><p><l><w>A</w></l></p></ocr>`, MiniOCR},
		{"miniocr without declaration", `<ocr><w>A</w></ocr>`, MiniOCR},
		{"hocr double quotes", `<html><body><div class="ocr_page" id="page_1"></div></body></html>`, HOCR},
		{"hocr single quotes", `<html><body><div class='ocr_page' id='page_1'></div></body></html>`, HOCR},
		{"alto with attributes", `<?xml version="1.0"?><alto xmlns="http://www.loc.gov/standards/alto/ns-v3#"></alto>`, ALTO},
		{"alto bare", `<alto><Layout/></alto>`, ALTO},
		{"alto newline after name", "<alto\n  xmlns=\"x\"></alto>", ALTO},
		{"all signatures prefer miniocr", `<ocr><div class="ocr_page"></div><alto ></alto></ocr>`, MiniOCR},
		{"hocr before alto", `<div class="ocr_page"><alto></alto></div>`, HOCR},
		{"miniocr signature not at start", `<root><ocr></ocr><alto></alto></root>`, ALTO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_Unknown(t *testing.T) {
	docs := []string{
		``,
		`<plain>text</plain>`,
		// the declaration must be immediately followed by <ocr>
		"<?xml version=\"1.0\"?>\n<ocr><w>A</w></ocr>",
		`<div class="ocr_page other"></div>`,
		`<div id="p1" class="ocr_page"></div>`,
		`<altoxml></altoxml>`,
		`<ALTO></ALTO>`,
		`<ocrx></ocrx>`,
	}

	for _, doc := range docs {
		got, err := Detect([]byte(doc))
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Detect(%q) error = %v, want ErrUnknownFormat", doc, err)
		}
		if got != Unknown {
			t.Errorf("Detect(%q) = %v, want Unknown", doc, got)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	doc := []byte(`<div class='ocr_page'><span class='ocrx_word' id='w1'>Foo</span></div>`)
	first, err1 := Detect(doc)
	second, err2 := Detect(doc)
	if first != second || err1 != err2 {
		t.Errorf("Detect() not deterministic: (%v, %v) then (%v, %v)", first, err1, second, err2)
	}
}

func TestSpecFor(t *testing.T) {
	for _, d := range []Dialect{MiniOCR, HOCR, ALTO} {
		spec := specFor(d)
		if spec == nil {
			t.Fatalf("specFor(%v) = nil", d)
		}
		if spec.dialect != d {
			t.Errorf("specFor(%v).dialect = %v", d, spec.dialect)
		}
		if spec.textGroup <= 0 {
			t.Errorf("specFor(%v) has no text group", d)
		}
	}
	if specFor(Unknown) != nil {
		t.Error("specFor(Unknown) should be nil")
	}
}
