// Command gen_rt_expects generates curried wrappers around test case builder
// methods, so that shared setup and expectations can be passed as values:
//
//	rtTest("name", prog).apply(withRTInputs(8), expectRTOutput(1))
//
// Usage:
//
//	go run scripts/gen_rt_expects.go -- SRC_test.go:DST_test.go...
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit for generating all files")
	recvType = flag.String("type", "rtTestCase", "builder type whose methods get wrapped")
	infix    = flag.String("infix", "RT", "inserted after each wrapper's with/expect prefix")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	for _, arg := range flag.Args() {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			log.Fatalf("invalid argument %q, expected SRC:DST", arg)
		}
		src, dst := parts[0], parts[1]
		eg.Go(func() error { return generate(ctx, src, dst) })
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func generate(ctx context.Context, src, dst string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, src, nil, 0)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %v\n\n", file.Name.Name)
	fmt.Fprintf(&buf, "// @generated from %v\n\n", src)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_rt_expects.go -- %v:%v\n\n", src, dst)

	for _, decl := range file.Decls {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isBuilderMethod(fn) {
			continue
		}
		if err := writeWrapper(&buf, fset, fn); err != nil {
			return fmt.Errorf("%v: %w", fset.Position(fn.Pos()), err)
		}
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %v: %w", dst, err)
	}
	return ioutil.WriteFile(dst, code, 0644)
}

// isBuilderMethod matches methods like:
//
//	func (rtt rtTestCase) expectMemAt(addr Word, values ...Word) rtTestCase
func isBuilderMethod(fn *ast.FuncDecl) bool {
	if fn.Recv == nil || len(fn.Recv.List) != 1 || !isIdent(fn.Recv.List[0].Type, *recvType) {
		return false
	}
	if name := fn.Name.Name; !strings.HasPrefix(name, "expect") && !strings.HasPrefix(name, "with") {
		return false
	}
	results := fn.Type.Results
	return fn.Type.Params.NumFields() > 0 &&
		results != nil && len(results.List) == 1 &&
		isIdent(results.List[0].Type, *recvType)
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func writeWrapper(buf *bytes.Buffer, fset *token.FileSet, fn *ast.FuncDecl) error {
	name := fn.Name.Name
	prefix := "with"
	if strings.HasPrefix(name, "expect") {
		prefix = "expect"
	}

	var params, args []string
	for _, field := range fn.Type.Params.List {
		if len(field.Names) == 0 {
			return fmt.Errorf("%v has an unnamed parameter", name)
		}
		var typ bytes.Buffer
		if err := printer.Fprint(&typ, fset, field.Type); err != nil {
			return err
		}
		_, variadic := field.Type.(*ast.Ellipsis)
		for _, id := range field.Names {
			params = append(params, id.Name+" "+typ.String())
			if variadic {
				args = append(args, id.Name+"...")
			} else {
				args = append(args, id.Name)
			}
		}
	}

	fmt.Fprintf(buf, "func %v%v%v(%v) func(%v) %v {\n",
		prefix, *infix, name[len(prefix):], strings.Join(params, ", "), *recvType, *recvType)
	fmt.Fprintf(buf, "return func(rtt %v) %v {\n", *recvType, *recvType)
	fmt.Fprintf(buf, "return rtt.%v(%v)\n", name, strings.Join(args, ", "))
	buf.WriteString("}\n}\n\n")
	return nil
}
