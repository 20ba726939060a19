// Command dataview reads JSON or JSONL documents and writes an HTML page that renders each of them as a dataview.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tidwall/gjson"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/dataview"
)

// settings can be given by flags or by a TOML file; flags win.
type settings struct {
	Title   string   `toml:"title"`
	XHTML   bool     `toml:"xhtml"`
	Compact bool     `toml:"compact"`
	Charset string   `toml:"charset"`
	Minify  bool     `toml:"minify"`
	Hide    []string `toml:"hide"`
	CSS     string   `toml:"css"`
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func newCommand() *cobra.Command {
	opt := settings{Charset: `utf-8`}
	var configPath, outputPath string
	cmd := &cobra.Command{
		Use:   "dataview [file...]",
		Short: "Render JSON or JSONL documents as an HTML page",
		Long: `Reads JSON or JSONL documents from the named files, or stdin, and writes an HTML page that renders each
value as a dataview: objects as key and value grids, arrays of objects as tables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, configPath, opt)
			if err != nil {
				return err
			}
			values, err := readValues(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outputPath != `` {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			log.Debug().Int(`values`, len(values)).Msg(`rendering`)
			return render(out, cfg, values)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configPath, `config`, ``, `read settings from a TOML file`)
	flags.StringVarP(&outputPath, `output`, `o`, ``, `write the page to a file instead of stdout`)
	flags.StringVar(&opt.Title, `title`, ``, `title of the page`)
	flags.BoolVar(&opt.XHTML, `xhtml`, false, `write XHTML instead of HTML`)
	flags.BoolVar(&opt.Compact, `compact`, false, `write no indentation`)
	flags.StringVar(&opt.Charset, `charset`, opt.Charset, `character encoding of the page`)
	flags.BoolVar(&opt.Minify, `minify`, false, `minify the stylesheet`)
	flags.StringArrayVar(&opt.Hide, `hide`, nil, `elide values whose path matches the pattern, like '@odata'`)
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log.Error().Err(err).Msg(``)
		os.Exit(1)
	}
}

// loadSettings reads the config file, if any, then applies the flags that were given explicitly.
func loadSettings(cmd *cobra.Command, configPath string, opt settings) (settings, error) {
	cfg := settings{Charset: `utf-8`}
	if configPath != `` {
		meta, err := toml.DecodeFile(configPath, &cfg)
		if err != nil {
			return cfg, fmt.Errorf(`%s: failed to parse TOML: %w`, configPath, err)
		}
		if keys := meta.Undecoded(); len(keys) > 0 {
			return cfg, fmt.Errorf(`%s: unknown setting %q`, configPath, keys[0].String())
		}
	}
	flags := cmd.Flags()
	if flags.Changed(`title`) {
		cfg.Title = opt.Title
	}
	if flags.Changed(`xhtml`) {
		cfg.XHTML = opt.XHTML
	}
	if flags.Changed(`compact`) {
		cfg.Compact = opt.Compact
	}
	if flags.Changed(`charset`) {
		cfg.Charset = opt.Charset
	}
	if flags.Changed(`minify`) {
		cfg.Minify = opt.Minify
	}
	if flags.Changed(`hide`) {
		cfg.Hide = append(cfg.Hide, opt.Hide...)
	}
	return cfg, nil
}

// readValues reads every JSON value from the files, or from stdin if there are none.  Each line of a JSONL
// file is a value.
func readValues(stdin io.Reader, paths []string) ([]gjson.Result, error) {
	var values []gjson.Result
	add := func(name string, js []byte) error {
		n := 0
		gjson.ForEachLine(string(js), func(line gjson.Result) bool {
			if line.Exists() {
				values = append(values, line)
				n++
			}
			return true
		})
		if n == 0 && len(strings.TrimSpace(string(js))) > 0 {
			return fmt.Errorf(`%s: no JSON values found`, name)
		}
		return nil
	}
	if len(paths) == 0 {
		js, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return values, add(`stdin`, js)
	}
	for _, path := range paths {
		js, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(js) && !validLines(js) {
			return nil, fmt.Errorf(`%s: invalid JSON`, path)
		}
		if err := add(path, js); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func validLines(js []byte) bool {
	for _, line := range strings.Split(string(js), "\n") {
		if strings.TrimSpace(line) != `` && !gjson.Valid(line) {
			return false
		}
	}
	return true
}

func render(w io.Writer, cfg settings, values []gjson.Result) error {
	options := []html.Option{html.WithCharset(cfg.Charset)}
	if cfg.XHTML {
		options = append(options, html.WithSerialization(html.XHTML))
	}
	if cfg.Compact {
		options = append(options, html.Compact())
	}

	var viewOptions []dataview.Option
	for _, pattern := range cfg.Hide {
		rx, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf(`invalid --hide pattern: %w`, err)
		}
		viewOptions = append(viewOptions, dataview.Hook(rx, elide))
	}

	stylesheet := dataview.Stylesheet() + theme + cfg.CSS
	if cfg.Minify {
		m := minify.New()
		m.AddFunc(`text/css`, css.Minify)
		minified, err := m.String(`text/css`, stylesheet)
		if err != nil {
			return fmt.Errorf(`could not minify the stylesheet: %w`, err)
		}
		stylesheet = minified
	}

	return html.Render(w, func(doc *html.Document) {
		doc.Doctype()
		doc.HTML().With(func(root *html.Sections) {
			root.Head().With(func(head *html.Metadata) {
				head.Meta().Charset(doc.Charset()).Close()
				if cfg.Title != `` {
					head.Title().Text(cfg.Title)
				}
				head.Style().Text(stylesheet)
			})
			root.Body().With(func(body *html.Flow) {
				if cfg.Title != `` {
					body.H1().Text(cfg.Title)
				}
				for _, value := range values {
					body.Section().Class(`dataview`).With(func(section *html.Flow) {
						dataview.Render[*html.Flow](section, value, viewOptions...)
					})
				}
			})
		})
	}, options...)
}

func elide(path string, data gjson.Result) html.Fragment {
	return func(doc *html.Document) {
		doc.Div().Class(`elide`).Title(path).Text(`…`)
	}
}

// theme extends the structural CSS from the dataview with colors, fonts and spacing.
const theme = `
body { background-color: #111; color: #eee; font-family: sans-serif; }
.object, .array, .table { border-top: 2px solid #888; }
.label { font-weight: bold; background-color: #333; }
.empty, .undefined, .null, .elide { font-style: italic; }
.label, .value { font-family: monospace; padding: .35em; }
`
