package compose

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"spt/archive"
	"spt/config"
	"spt/css"
	"spt/render"
	"spt/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compose")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format, err := config.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to xhtml", zap.Error(err))
		format = config.OutputFmtXhtml
	}

	if sheet := env.Cfg.Document.StylesheetPath; sheet != "" {
		data, err := os.ReadFile(sheet)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", sheet, err)
		}
		classes, warnings, err := css.NewParser(log).Parse(data, sheet)
		if err != nil {
			return fmt.Errorf("unable to parse stylesheet %q: %w", sheet, err)
		}
		for _, w := range warnings {
			log.Warn("Stylesheet rule ignored", zap.String("file", sheet), zap.String("reason", w))
		}
		env.Classes = env.Classes.Merge(classes)
	}

	env.NoDirs, env.Overwrite, env.Join = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("join")

	// scripts written on old systems may come in legacy encodings, archive
	// entry names too
	if cp := cmd.String("input-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Converting scripts and non UTF-8 archive names", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

func isScriptFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// process determines the kind of input (directory, archive with optional path
// inside, or single script) and handles it. Failures of individual scripts
// do not stop processing and are returned together.
func process(ctx context.Context, src, dst string, format config.OutputFmt, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist, probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return processDir(ctx, head, dst, format, log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			return processArchive(ctx, head, inner, "", dst, format, log)
		}

		if isScriptFile(head) && len(tail) == 0 {
			return processFile(ctx, head, filepath.Base(head), dst, format, log)
		}
		return fmt.Errorf("input was not recognized as compose script (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

func processFile(ctx context.Context, file, src, dst string, format config.OutputFmt, log *zap.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return processScript(ctx, f, src, dirAssets{dir: filepath.Dir(file)}, dst, format, log)
}

// processDir walks directory tree processing every script and archive.
func processDir(ctx context.Context, dir, dst string, format config.OutputFmt, log *zap.Logger) error {
	var (
		count int
		errs  error
	)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := archive.IsArchive(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, format, log); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
			}
			return nil
		}
		if !isScriptFile(path) {
			log.Debug("Skipping file, not recognized as script or archive", zap.String("file", path))
			return nil
		}

		count++
		if err := processFile(ctx, path, rel, dst, format, log); err != nil {
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return multierr.Append(err, errs)
}

// processArchive processes scripts found in archive under pathIn. Assets are
// looked up in the same archive relative to each script.
func processArchive(ctx context.Context, file, pathIn, pathOut, dst string, format config.OutputFmt, log *zap.Logger) error {
	r, err := archive.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open archive: %w", err)
	}
	defer r.Close()

	cp := state.EnvFromContext(ctx).CodePage

	var (
		count int
		errs  error
	)
	err = r.Walk(pathIn, func(name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isScriptFile(f.FileHeader.Name) {
			log.Debug("Skipping file, not recognized as script", zap.String("archive", name), zap.String("file", f.FileHeader.Name))
			return nil
		}
		count++

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}

		rc, err := f.Open()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.FileHeader.Name, err))
			return nil
		}
		defer rc.Close()

		assets := zipAssets{r: r, dir: path.Dir(f.FileHeader.Name)}
		if err := processScript(ctx, rc, filepath.Join(pathOut, filepath.FromSlash(pathInArchive)), assets, dst, format, log); err != nil {
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", file))
	}
	return multierr.Append(err, errs)
}

// processScript composes a single script. src is the script path relative to
// the processed source (base name for a single file), dst is the destination
// directory.
func processScript(ctx context.Context, r io.Reader, src string, assets Assets, dst string, format config.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Composition starting", zap.String("from", src))
	defer func(start time.Time) {
		// raster libraries may panic on hostile input, other scripts should
		// still be processed
		if r := recover(); r != nil {
			log.Error("Composition ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("composition panic (%s): %v", src, r)
		} else if rerr != nil {
			log.Error("Composition failed", zap.String("from", src), zap.Error(rerr))
		} else {
			log.Info("Composition completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	if env.CodePage != nil {
		r = env.CodePage.NewDecoder().Reader(r)
	}
	script, err := DecodeScript(r)
	if err != nil {
		return fmt.Errorf("unable to read script (%s): %w", src, err)
	}

	composer := NewComposer(&env.Cfg.Document, log.With(zap.String("script", src)),
		WithClasses(env.Classes),
		WithAssets(assets),
		WithDefaultLabel(env.DefaultLabel),
		WithJoin(env.Join),
	)
	out, err := composer.Compose(script)
	if err != nil {
		return fmt.Errorf("unable to compose script (%s): %w", src, err)
	}
	for _, w := range multierr.Errors(out.Warnings) {
		log.Warn("Script composed with warnings", zap.String("script", src), zap.Error(w))
	}

	outputName = buildOutputPath(src, dst, newValues(script, src, len(out.Results), format), format, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := write(outputName, script, src, out, format, &env.Cfg.Document, log); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	// keep composition results for debugging
	if env.Rpt != nil {
		var dump strings.Builder
		for i, res := range out.Results {
			fmt.Fprintf(&dump, "--- result %d\n%s\n", i+1, res)
		}
		base := filepath.ToSlash(strings.TrimSuffix(src, filepath.Ext(src)))
		env.Rpt.StoreData("results/"+base+".txt", []byte(dump.String()))
		env.Rpt.Store("results/"+base+format.Ext(), outputName)
	}
	return nil
}

func write(outputName string, script *Script, src string, out *Outcome, format config.OutputFmt, cfg *config.DocumentConfig, log *zap.Logger) (err error) {
	f, err := os.Create(outputName)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			_ = os.Remove(outputName)
		}
	}()

	title := script.Title
	if len(title) == 0 {
		title = filepath.Base(src)
	}

	switch format {
	case config.OutputFmtXhtml:
		return render.WriteXHTML(f, out.Results, render.Options{
			Title:   title,
			Density: cfg.Density,
			Images:  render.DataURIs(cfg, log),
			Log:     log,
		})
	case config.OutputFmtBundle:
		return render.Bundle(f, out.Results, title, cfg, log)
	case config.OutputFmtYaml:
		return render.YAML(f, render.NewDump(filepath.ToSlash(src), out.Results))
	case config.OutputFmtIon:
		return render.Ion(f, render.NewDump(filepath.ToSlash(src), out.Results))
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}
