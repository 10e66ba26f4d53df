package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/ssxview"
	"github.com/bodgit/ssxview/display"
	"github.com/bodgit/ssxview/preview"
	"github.com/bodgit/ssxview/ssx"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const defaultDB = "ssxview.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func view(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	l, err := display.NewLoader(c.Int("width"), c.Int("height"), display.DefaultCacheSize, newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := display.Show(l, c.Args().Slice(), c.Int("zoom")); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func info(w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := ssx.DecodeScreen(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	clut := make([]string, len(s.CLUT))
	for i, v := range s.CLUT {
		clut[i] = fmt.Sprintf("%d", v&0x7f)
	}
	if s.Format == ssx.RawIndexed {
		clut = []string{"none"}
	}

	fmt.Fprintf(w, "%s: %s, %dx%d, CLUT %s\n", file, s.Format, s.Format.Width(), s.Format.Height(), strings.Join(clut, " "))

	return nil
}

// Reports whether w is a terminal that can draw ANSI previews
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func list(c *cli.Context) error {
	m, err := ssxview.New(c.String("db"), newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer m.Close()

	entries, err := m.List()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	previews := c.Bool("preview") && isTerminal(c.App.Writer)

	for _, e := range entries {
		fmt.Fprintf(c.App.Writer, "%s  %-11s %s\n", e.SHA1, e.Format, e.Path)
		if !previews {
			continue
		}
		p, err := m.Preview(e.Path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if p == nil {
			continue
		}
		if err := preview.WriteANSI(c.App.Writer, p); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "ssxview"
	app.Usage = "SAM Coupé SSX screen viewer"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE..."

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	viewFlags := []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Value: display.DefaultWidth,
			Usage: "display width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: display.DefaultHeight,
			Usage: "display height in pixels",
		},
		&cli.IntFlag{
			Name:  "zoom",
			Value: 1,
			Usage: "initial window size multiplier",
		},
	}

	app.Flags = append([]cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SSXVIEW_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}, viewFlags...)

	app.Action = view

	app.Commands = []*cli.Command{
		{
			Name:      "view",
			Usage:     "Display one or more SSX files",
			ArgsUsage: "FILE...",
			Flags:     viewFlags,
			Action:    view,
		},
		{
			Name:      "info",
			Usage:     "Print the format and CLUT of SSX files",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, file := range c.Args().Slice() {
					if err := info(c.App.Writer, file); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and catalog SSX files",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := ssxview.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List catalogued SSX files",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "preview",
					Usage: "draw a thumbnail of each screen when writing to a terminal",
				},
			},
			Action: list,
		},
		{
			Name:      "forget",
			Usage:     "Remove SSX files from the catalog",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := ssxview.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				for _, file := range c.Args().Slice() {
					if err := m.Forget(file); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
