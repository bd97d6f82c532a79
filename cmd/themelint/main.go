// Package main provides a linter for ember theme files. It loads each
// theme, reports structural errors, and warns about styles that are
// likely mistakes (regions outside the texture, opacity out of range).
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

func main() {
	verbose := flag.Bool("v", false, "list every style in each valid theme")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: themelint [-v] theme.yaml ...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if !lint(path, *verbose) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func lint(path string, verbose bool) bool {
	loader := &theme.Loader{}
	th, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	names := th.StyleNames()
	sort.Strings(names)

	warnings := 0
	for _, name := range names {
		warnings += lintStyle(path, name, th)
	}

	if verbose {
		fmt.Printf("%s: %d styles\n", path, len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
	if warnings > 0 {
		fmt.Printf("%s: ok with %d warnings\n", path, warnings)
	} else {
		fmt.Printf("%s: ok\n", path)
	}
	return true
}

func lintStyle(path, name string, th *theme.Theme) int {
	s := th.Style(name)
	warnings := 0
	warn := func(format string, args ...any) {
		fmt.Printf("%s: style %q: %s\n", path, name, fmt.Sprintf(format, args...))
		warnings++
	}

	var bounds graphics.Rect
	if tex := th.Texture(); tex != nil {
		bounds = graphics.Rect{Width: tex.Width, Height: tex.Height}
	}

	for _, overlayType := range []theme.OverlayType{
		theme.OverlayNormal, theme.OverlayFocus, theme.OverlayActive, theme.OverlayDisabled,
	} {
		if !s.HasOverlay(overlayType) {
			continue
		}
		o := s.Overlay(overlayType)
		if o.Opacity < 0 || o.Opacity > 1 {
			warn("%s overlay: opacity %g outside [0, 1]", overlayType, o.Opacity)
		}
		if o.Skin != nil && !bounds.IsEmpty() && !contains(bounds, o.Skin.Region) {
			warn("%s overlay: skin region %v outside texture", overlayType, o.Skin.Region)
		}
		if o.Images != nil {
			for _, img := range o.Images.Images {
				if !bounds.IsEmpty() && !contains(bounds, img.Region) {
					warn("%s overlay: image %q region %v outside texture", overlayType, img.ID, img.Region)
				}
			}
		}
	}
	return warnings
}

// contains reports whether inner lies fully within outer.
func contains(outer, inner graphics.Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.Right() <= outer.Right() && inner.Bottom() <= outer.Bottom()
}
