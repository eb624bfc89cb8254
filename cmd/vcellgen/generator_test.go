package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const kindsSource = `package sample

var (
	FlagKind   = newScalar[bool](TypeBool, nil, nil)
	SpotKind   = newRef[Point](TypePoint)
	ThingKind  = newCounted[Object](TypeObject)
	BlobKind   = newArray[int32](TypeSignedArray, nil)
	RawKind    = newOpaque[unsafe.Pointer](TypePointer, nil, nil)
	helperKind = newScalar[int](TypeSigned, nil, nil)
	Other      = newScalar[bool](TypeBool, nil, nil)
	PlainKind  = something()
)
`

func parseKinds(t *testing.T) []kindInfo {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "kinds.go", kindsSource, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	kinds, err := collectKinds(fset, file)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return kinds
}

func TestCollectKinds(t *testing.T) {
	want := []kindInfo{
		{Var: "FlagKind", Name: "Flag", Family: "Scalar", Type: "bool"},
		{Var: "SpotKind", Name: "Spot", Family: "Ref", Type: "Point"},
		{Var: "ThingKind", Name: "Thing", Family: "Counted", Type: "Object"},
		{Var: "BlobKind", Name: "Blob", Family: "Array", Type: "int32"},
		{Var: "RawKind", Name: "Raw", Family: "Scalar", Type: "unsafe.Pointer"},
	}
	if diff := cmp.Diff(want, parseKinds(t)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAccessors(t *testing.T) {
	src, err := generateAccessors(&packageInfo{Name: "sample", Kinds: parseKinds(t)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(src, []byte(generatedHeader)) {
		t.Fatalf("missing header:\n%s", src)
	}
	for _, want := range []string{
		`"unsafe"`,
		"func (v *Value) SetFlag(x bool) { FlagKind.Set(v, x) }",
		"func (v *Value) WrapSpot(x *Point) { SpotKind.Wrap(v, x) }",
		"func (v *Value) SetThingAddRef(x Object) { ThingKind.SetAddRef(v, x) }",
		"func (v *Value) GetBlob() ([]int32, error) { return BlobKind.GetArray(v) }",
		"func (v *Value) AsRaw() unsafe.Pointer { return RawKind.As(v) }",
	} {
		if !strings.Contains(string(src), want) {
			t.Fatalf("generated source missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(string(src), "Other") || strings.Contains(string(src), "Plain") {
		t.Fatalf("generated accessors for non-descriptor vars:\n%s", src)
	}
}

func TestWriteFileIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessors_gen.go")
	data := []byte(generatedHeader + "\n\npackage sample\n")

	changed, err := writeFileIfChanged(path, data)
	if err != nil || !changed {
		t.Fatalf("first write = %v, %v", changed, err)
	}
	changed, err = writeFileIfChanged(path, data)
	if err != nil || changed {
		t.Fatalf("second write = %v, %v", changed, err)
	}
	removed, err := removeGeneratedFile(path)
	if err != nil || !removed {
		t.Fatalf("remove = %v, %v", removed, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}
}

func TestRemoveGeneratedFileKeepsHandWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessors_gen.go")
	if err := os.WriteFile(path, []byte("package sample\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	removed, err := removeGeneratedFile(path)
	if err != nil || removed {
		t.Fatalf("remove = %v, %v", removed, err)
	}
}
