// Command laminar is a thin CLI driver over pkg/laminar, grounded on
// cmd/graft/main.go: goptions for flags, go-isatty to decide on color,
// goutils/ansi for colored diagnostics.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/starkandwayne/goutils/ansi"
	"github.com/voxelbrain/goptions"
	"gopkg.in/yaml.v2"

	"github.com/laminarconf/laminar/internal/loader"
	"github.com/laminarconf/laminar/pkg/laminar"
	"github.com/laminarconf/laminar/pkg/laminar/transforms"
)

// Version holds the current version of laminar.
var Version = "(development)"

var printfStdOut = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		usage()
	}
}

var exit = func(code int) {
	os.Exit(code)
}

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

type mergeOpts struct {
	EnvPrefix  string             `goptions:"--env-prefix, description='Prefix environment variables must carry to be considered, default LAMINAR_'"`
	DefaultEnv string             `goptions:"--default-env, description='Environment name raw trees fall under when a source has no explicit environments'"`
	SkipEnv    bool               `goptions:"--skip-env, description='Do not scrape process environment variables'"`
	Help       bool               `goptions:"--help, -h"`
	Files      goptions.Remainder `goptions:"description='List of files to merge. To read STDIN, specify a filename of \\'-\\'.'"`
}

func main() {
	var options struct {
		Debug   bool            `goptions:"-D, --debug, description='Enable debugging'"`
		Version bool            `goptions:"-v, --version, description='Display version information'"`
		Color   string          `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
		Action  goptions.Verbs
		Merge   mergeOpts `goptions:"merge"`
	}
	getopts(&options)

	if envFlag("LAMINAR_DEBUG") || options.Debug {
		os.Setenv("LAMINAR_DEBUG", "1")
	}

	if options.Merge.Help {
		usage()
		return
	}

	if options.Version {
		printfStdOut("%s - Version %s\n", os.Args[0], Version)
		exit(0)
		return
	}

	shouldEnableColor := false
	switch options.Color {
	case "on":
		shouldEnableColor = true
	case "off":
		shouldEnableColor = false
	case "auto", "":
		shouldEnableColor = isatty.IsTerminal(os.Stderr.Fd())
	default:
		fmt.Fprintf(os.Stderr, "Invalid --color option: %s. Must be 'on', 'off', or 'auto'.\n", options.Color)
		exit(1)
		return
	}
	ansi.Color(shouldEnableColor)

	switch options.Action {
	case "merge":
		merged, err := cmdMerge(options.Merge)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
			exit(2)
			return
		}
		out, err := yaml.Marshal(merged)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to convert merged result back to YAML: %s\n", err.Error())
			exit(2)
			return
		}
		printfStdOut("%s\n", string(out))
	default:
		usage()
	}
}

func envFlag(varname string) bool {
	val := os.Getenv(varname)
	return val != "" && strings.ToLower(val) != "false" && val != "0"
}

// cmdMerge loads every named source, builds one merge tree per environment
// it contains, and folds each into a shared base tree in file order — the
// same "later files win" contract cmdMergeEval gives graft's own merge
// subcommand. A failure loading or merging one source doesn't stop the
// rest from being tried: every error encountered is accumulated and
// reported together at the end, mirroring the teacher's own MultiError
// role in pkg/graft/merger/merge.go.
func cmdMerge(opts mergeOpts) (laminar.Mapping, error) {
	files := opts.Files
	if len(files) < 1 {
		files = []string{"-"}
	}

	registry := transforms.NewDefaultRegistry()
	policy := laminar.NewPolicyRegistry()
	loaders := loader.NewDefaultRegistry()

	lc := loader.LoadContext{
		DefaultEnvName: opts.DefaultEnv,
		EnvVarPrefix:   opts.EnvPrefix,
	}
	if lc.DefaultEnvName == "" {
		lc.DefaultEnvName = "default"
	}

	base := laminar.Mapping{}
	ctx := context.Background()
	errs := &laminar.Errors{}

	for _, file := range files {
		req := loader.LoadRequest{LoaderID: loaderIDFor(file), URI: file}
		envs, err := loader.Load(ctx, req, lc, loaders)
		if err != nil {
			errs.Append(err)
			continue
		}
		for _, tree := range envs {
			base, err = mergeOne(tree, base, registry, policy)
			if err != nil {
				errs.Append(err)
			}
		}
	}

	if !opts.SkipEnv {
		envReq := loader.LoadRequest{LoaderID: "env"}
		envs, err := loader.Load(ctx, envReq, lc, loaders)
		if err != nil {
			errs.Append(err)
		} else {
			for _, tree := range envs {
				base, err = mergeOne(tree, base, registry, policy)
				if err != nil {
					errs.Append(err)
				}
			}
		}
	}

	return base, errs.ErrorOrNil()
}

func mergeOne(incoming, base laminar.Mapping, registry *laminar.Registry, policy *laminar.PolicyRegistry) (laminar.Mapping, error) {
	mt, err := laminar.CreateMergeTree(incoming, registry, policy)
	if err != nil {
		return nil, err
	}
	return laminar.ApplyMergeTree(base, mt, true)
}

// loaderIDFor picks a format loader by file extension, defaulting to YAML
// the way the teacher's own tooling assumes YAML unless told otherwise.
func loaderIDFor(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
