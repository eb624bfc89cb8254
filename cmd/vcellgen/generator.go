package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const generatedHeader = "// Code generated by vcellgen; DO NOT EDIT."

type packageInfo struct {
	Dir   string
	Name  string
	Kinds []kindInfo
}

type kindInfo struct {
	// Var is the descriptor variable, Name the accessor suffix.
	Var  string
	Name string
	// Family is one of Scalar, Ref, Counted or Array.
	Family string
	// Type is the type argument of the constructor: the value type, the
	// struct type or the array element type.
	Type string
}

//go:embed templates/accessors_gen.gotemplate
var accessorsTemplate string

// constructors maps descriptor constructor names to their family.
var constructors = map[string]string{
	"newScalar":  "Scalar",
	"newOpaque":  "Scalar",
	"newRef":     "Ref",
	"newCounted": "Counted",
	"newArray":   "Array",
}

func loadPackageInfo(dir string) (*packageInfo, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package load error in %s: %v", dir, pkg.Errors[0])
	}

	info := &packageInfo{Dir: dir, Name: pkg.Name}
	for _, file := range pkg.Syntax {
		if pkg.Fset != nil {
			base := filepath.Base(pkg.Fset.Position(file.Pos()).Filename)
			if strings.HasSuffix(base, "_test.go") || strings.HasSuffix(base, "_gen.go") {
				continue
			}
		}
		kinds, err := collectKinds(pkg.Fset, file)
		if err != nil {
			return nil, err
		}
		info.Kinds = append(info.Kinds, kinds...)
	}
	sort.Slice(info.Kinds, func(i, j int) bool {
		return info.Kinds[i].Var < info.Kinds[j].Var
	})
	return info, nil
}

func collectKinds(fset *token.FileSet, file *ast.File) ([]kindInfo, error) {
	var kinds []kindInfo
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Names) != len(vs.Values) {
				continue
			}
			for i, name := range vs.Names {
				if !name.IsExported() || !strings.HasSuffix(name.Name, "Kind") {
					continue
				}
				family, typeArg, ok := constructorCall(vs.Values[i])
				if !ok {
					continue
				}
				typ, err := formatNode(fset, typeArg)
				if err != nil {
					return nil, err
				}
				kinds = append(kinds, kindInfo{
					Var:    name.Name,
					Name:   strings.TrimSuffix(name.Name, "Kind"),
					Family: family,
					Type:   typ,
				})
			}
		}
	}
	return kinds, nil
}

// constructorCall matches newX[T](...) and returns the family and T.
func constructorCall(expr ast.Expr) (string, ast.Expr, bool) {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return "", nil, false
	}
	idx, ok := call.Fun.(*ast.IndexExpr)
	if !ok {
		return "", nil, false
	}
	ident, ok := idx.X.(*ast.Ident)
	if !ok {
		return "", nil, false
	}
	family, ok := constructors[ident.Name]
	if !ok {
		return "", nil, false
	}
	return family, idx.Index, true
}

func formatNode(fset *token.FileSet, node ast.Node) (string, error) {
	var buf bytes.Buffer
	if fset == nil {
		fset = token.NewFileSet()
	}
	if err := format.Node(&buf, fset, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type templateData struct {
	Header      string
	PackageName string
	Imports     []string
	Kinds       []kindInfo
}

func generateAccessors(info *packageInfo) ([]byte, error) {
	var imports []string
	for _, k := range info.Kinds {
		if strings.HasPrefix(k.Type, "unsafe.") {
			imports = append(imports, `"unsafe"`)
			break
		}
	}

	var buf bytes.Buffer
	tmpl, err := template.New("accessors_gen").Parse(accessorsTemplate)
	if err != nil {
		return nil, err
	}
	if err := tmpl.Execute(&buf, templateData{
		Header:      generatedHeader,
		PackageName: info.Name,
		Imports:     imports,
		Kinds:       info.Kinds,
	}); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func isStale(filePath string, data []byte) (bool, error) {
	existing, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return !bytes.Equal(existing, data), nil
}

func writeFileIfChanged(filePath string, data []byte) (bool, error) {
	stale, err := isStale(filePath, data)
	if err != nil || !stale {
		return false, err
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func removeGeneratedFile(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !bytes.HasPrefix(data, []byte(generatedHeader)) {
		return false, nil
	}
	if err := os.Remove(filePath); err != nil {
		return false, err
	}
	return true, nil
}
