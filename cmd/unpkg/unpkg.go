package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	html "github.com/swdunlop/fluent-html-go"
)

var opt struct {
	Defer bool
	XHTML bool
}

// unpkgBase is the origin of package metadata and the URLs written into tags.
var unpkgBase = `https://unpkg.com/`

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "unpkg <path>...",
	Short: "Print script and link tags with SRI for packages on unpkg.com",
	Long: `This utility queries unpkg.com for dependencies and follows redirects to the full URL then outputs a script or
link tag with SRI information and disabled referrer policy.

  unpkg alpinejs
  unpkg alpinejs@latest
  unpkg alpinejs@3.12.0
  unpkg alpinejs/dist/cdn.min.js
  unpkg alpinejs@latest/dist/cdn.min.js`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var options []html.Option
		if opt.XHTML {
			options = append(options, html.WithSerialization(html.XHTML))
		}
		failed := 0
		for _, path := range args {
			markup, err := resolve(path, options...)
			if err != nil {
				log.Error().Err(err).Str(`path`, path).Msg(`could not resolve`)
				failed++
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), markup)
		}
		if failed > 0 {
			return fmt.Errorf(`%d of %d paths could not be resolved`, failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&opt.Defer, `defer`, false, `use defer attribute for <script> tags`)
	rootCmd.Flags().BoolVar(&opt.XHTML, `xhtml`, false, `write tags in XHTML syntax`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolve(path string, options ...html.Option) (html.Static, error) {
	corrected, err := resolveUnpkgPath(path)
	if err != nil {
		return nil, err
	}
	if path != corrected {
		log.Debug().Str(`from`, path).Str(`to`, corrected).Msg(`redirected`)
		path = corrected
	}
	meta, err := fetchUnpkgMeta(path)
	if err != nil {
		return nil, err
	}
	return tagFor(meta, unpkgBase+path, options...)
}

// tagFor renders the script or link tag that loads a file, each on its own line.
func tagFor(meta *fileMeta, url string, options ...html.Option) (html.Static, error) {
	contentType := strings.SplitN(meta.Type, `;`, 2)[0]
	var fn func(doc *html.Document)
	switch contentType {
	case `text/javascript`, `application/javascript`:
		fn = func(doc *html.Document) {
			script := doc.Script()
			if opt.Defer {
				script.Defer()
			}
			script.Src(url).
				Integrity(meta.Integrity).
				CrossOrigin(`anonymous`).
				ReferrerPolicy(`no-referrer`).
				Close()
		}
	case `text/css`:
		fn = func(doc *html.Document) {
			doc.Link().
				Rel(`stylesheet`).
				Href(url).
				Integrity(meta.Integrity).
				CrossOrigin(`anonymous`).
				ReferrerPolicy(`no-referrer`).
				Close()
		}
	case ``:
		return nil, fmt.Errorf(`no content type; Unpkg has changed its schema again?`)
	default:
		return nil, fmt.Errorf(`unknown content type %q`, contentType)
	}
	return html.Capture(fn, options...)
}

// resolveUnpkgPath lets unpkg redirect us to the full path, which includes the package, path and version.
func resolveUnpkgPath(path string) (string, error) {
	rsp, err := http.Get(unpkgBase + path)
	if err != nil {
		return path, err
	}
	defer rsp.Body.Close()
	defer io.Copy(io.Discard, rsp.Body)
	return strings.TrimPrefix(rsp.Request.URL.Path, `/`), nil
}

func fetchUnpkgMeta(path string) (*fileMeta, error) {
	m := rxResource.FindStringSubmatch(path)
	if m == nil {
		return nil, fmt.Errorf(`could not parse %q into package, file and version`, path)
	}
	pkg, version, filePath := m[1], m[2], m[3]

	var meta packageMeta
	url := unpkgBase + pkg + version + `?meta`
	if err := getJSON(&meta, url); err != nil {
		return nil, err
	}
	for i := range meta.Files {
		file := &meta.Files[i]
		if file.Path == filePath {
			return file, nil
		}
	}
	return nil, fmt.Errorf(`could not find path %q in %v`, filePath, url)
}

var rxResource = regexp.MustCompile(`^((?:@[^@/]+/)?[^@/]+)(@[^/@]+)?(/.*)$`)

type packageMeta struct {
	Package string     `json:"package"`
	Version string     `json:"version"`
	Prefix  string     `json:"prefix"`
	Files   []fileMeta `json:"files"`
}

type fileMeta struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Type      string `json:"type"`
	Integrity string `json:"integrity"`
}

func getJSON(v any, url string) error {
	rsp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = rsp.Body.Close() }()
	switch rsp.StatusCode {
	case 200:
		if err := json.NewDecoder(rsp.Body).Decode(v); err != nil {
			return fmt.Errorf(`could not decode %v: %w`, url, err)
		}
		return nil
	default:
		return fmt.Errorf(`%v while fetching %v`, rsp.Status, url)
	}
}
