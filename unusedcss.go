// Package unusedcss finds CSS class selectors that are declared in a project's
// stylesheets but never referenced in its source files.
//
// Detection is purely textual. Selectors are pulled out of style sources with a
// lexical heuristic and each one is searched for as a plain substring in the
// source files. Dynamically composed class names are not understood, so a
// selector reported as unused is a cleanup candidate, not a guarantee.
//
// # Pipeline
//
// Every stage is a plain function with explicit inputs and outputs:
//
//	styles, err := unusedcss.CollectFiles("web/styles", []string{"css", "scss"}, false)
//	selectors, err := unusedcss.ExtractSelectors(styles, false)
//	sources, err := unusedcss.CollectFiles("web/src", []string{"vue", "js", "twig"}, false)
//	ignore := unusedcss.NewIgnoreSpec(nil, nil, sources.Root)
//	unused, err := unusedcss.FindUnused(selectors, sources, ignore)
//
// Find runs the whole pipeline from a Config, and WriteOutput renders the
// Result in the configured output mode:
//
//	config := unusedcss.DefaultConfig()
//	config.CSSDir = "web/styles"
//	config.SrcDir = "web/src"
//	result, err := unusedcss.Find(config)
//	if err != nil {
//		return err
//	}
//	return unusedcss.WriteOutput(os.Stdout, result)
//
// # CLI Tool
//
// Install the command line tool with:
//
//	go install github.com/yacobolo/unusedcss/cmd/unusedcss@latest
package unusedcss
