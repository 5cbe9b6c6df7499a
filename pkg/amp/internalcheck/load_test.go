package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/Neuer2718/applied-math-playground"

// corePackages implement the number theory and must not delegate it.
var corePackages = map[string]bool{
	modulePath + "/pkg/amp/modarith":    true,
	modulePath + "/pkg/amp/millerrabin": true,
	modulePath + "/pkg/amp/primes":      true,
	modulePath + "/pkg/amp/textbookrsa": true,
}

func loadLibrary(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/amp/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			t.Fatalf("package %s: %v", pkg.PkgPath, e)
		}
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	return pkgs
}

const syntaxMode = packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName
