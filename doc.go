// Package htmlify bundles local files into one self-contained HTML report.
//
// Every file is embedded as a base64 data URI or as inline markup, so the
// report can be opened or shared without the files it was built from.
//
// # Quick Start
//
//	reg, err := htmlify.DefaultRegistry(htmlify.HandlerOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := htmlify.NewBuilder(
//	    htmlify.WithRegistry(reg),
//	    htmlify.WithDiagnostics(os.Stdout),
//	)
//	report, err := b.Build(ctx, []string{"a.png", "scene.glb", "notes.md"})
//	if err != nil {
//	    log.Fatal(err) // a listed file could not be read
//	}
//	os.WriteFile("report.html", []byte(report.HTML()), 0o644)
//
// # Handlers
//
// A Handler renders one file type. The Registry maps case-folded extensions
// to handlers; DefaultRegistry binds:
//
//	image     png, jpg, jpeg, gif          <img> with a data URI
//	model     glb, gltf                    <model-viewer> with a data URI
//	markdown  md, markdown                 sanitized HTML, images inlined
//	code      go, py, js, json, yaml, ...  highlighted <pre>
//
// A handler may also contribute a Header, placed once in the document head
// when at least one of its files is present (the model-viewer script, CSS
// for highlighted code).
//
// Custom handlers are registered on a Registry of your own:
//
//	reg := htmlify.NewRegistry()
//	err := reg.Register(myHandler, "csv", "tsv")
//
// Registering an alias twice fails with ErrAliasCollision.
//
// # Errors
//
// A file with no handler is not an error: it is reported to the diagnostics
// writer and skipped. A listed file that cannot be read aborts Build with an
// error matching ErrReadFile (and os.ErrNotExist, os.ErrPermission, ...).
//
// # PDF Export
//
// PDFExporter renders a finished report with headless Chrome (go-rod). The
// browser is downloaded on first use unless ROD_BROWSER_BIN is set.
package htmlify
