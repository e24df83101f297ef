package picture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdecor/pkg/dom"
)

func TestCreateOptimizedPictureDefaults(t *testing.T) {
	factory := Must()

	picture, err := factory.CreateOptimizedPicture("/icons/buffalo-bills-logo.svg", "Buffalo Bills")
	if err != nil {
		t.Fatalf("create picture: %v", err)
	}

	want := `<picture>` +
		`<source media="(min-width: 600px)" type="image/webp" srcset="/icons/buffalo-bills-logo.svg?width=2000&amp;format=webply&amp;optimize=medium"/>` +
		`<source type="image/webp" srcset="/icons/buffalo-bills-logo.svg?width=750&amp;format=webply&amp;optimize=medium"/>` +
		`<source media="(min-width: 600px)" srcset="/icons/buffalo-bills-logo.svg?width=2000&amp;format=svg&amp;optimize=medium"/>` +
		`<img loading="lazy" alt="Buffalo Bills" src="/icons/buffalo-bills-logo.svg?width=750&amp;format=svg&amp;optimize=medium"/>` +
		`</picture>`
	if diff := cmp.Diff(want, picture.String()); diff != "" {
		t.Fatalf("picture markup mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateOptimizedPictureResolvesAgainstBase(t *testing.T) {
	factory := Must(WithBaseURL("https://example.com/content/forms/"), WithEager(true))

	cases := []struct {
		path string
		want string
	}{
		{path: "logo.png", want: "/content/forms/logo.png?width=750&format=png&optimize=medium"},
		{path: "/abs/logo.jpeg", want: "/abs/logo.jpeg?width=750&format=jpeg&optimize=medium"},
		{path: "https://cdn.example.net/media/a.webp?x=1#frag", want: "/media/a.webp?width=750&format=webp&optimize=medium"},
		{path: "../up.gif", want: "/content/up.gif?width=750&format=gif&optimize=medium"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			picture, err := factory.CreateOptimizedPicture(tc.path, "alt")
			if err != nil {
				t.Fatalf("create picture: %v", err)
			}
			img := picture.LastChild()
			if img.Tag() != "img" {
				t.Fatalf("last child = %q, want img", img.Tag())
			}
			if got, _ := img.Attr("src"); got != tc.want {
				t.Fatalf("src = %q, want %q", got, tc.want)
			}
			if got, _ := img.Attr("loading"); got != "eager" {
				t.Fatalf("loading = %q, want eager", got)
			}
		})
	}
}

func TestCreateOptimizedPictureEmptyPath(t *testing.T) {
	picture, err := Must().CreateOptimizedPicture("", "")
	if err != nil {
		t.Fatalf("create picture: %v", err)
	}
	children := picture.Children()
	if len(children) != 1 || children[0].Tag() != "img" {
		t.Fatalf("expected a lone img, got %s", picture.String())
	}
	img := children[0]
	if img.HasAttr("src") || img.HasAttr("srcset") {
		t.Fatalf("img should not carry a source: %s", img.String())
	}
	if alt, ok := img.Attr("alt"); !ok || alt != "" {
		t.Fatalf("alt = %q, %v", alt, ok)
	}
}

func TestCreateOptimizedPictureCustomBreakpoints(t *testing.T) {
	factory := Must(WithBreakpoints(Breakpoint{Width: "320"}), WithOptimize("high"))
	picture, err := factory.CreateOptimizedPicture("/x/logo", "X")
	if err != nil {
		t.Fatalf("create picture: %v", err)
	}
	children := picture.Children()
	if len(children) != 2 {
		t.Fatalf("expected webp source and img, got %s", picture.String())
	}
	if got, _ := children[0].Attr("srcset"); got != "/x/logo?width=320&format=webply&optimize=high" {
		t.Fatalf("webp srcset = %q", got)
	}
	if got, _ := children[1].Attr("src"); got != "/x/logo?width=320&optimize=high" {
		t.Fatalf("extensionless src = %q", got)
	}
}

func TestCreateOptimizedPictureInvalidPath(t *testing.T) {
	_, err := Must().CreateOptimizedPicture("%zz", "bad")
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("error = %v, want ErrInvalidPath", err)
	}
}

func TestCreateOptimizedPictureThemeAssets(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme: "nfl",
		AssetURL: func(key string) string {
			if key == "" || key == "missing" {
				return ""
			}
			return "/assets/themes/nfl/" + key
		},
	}
	factory := Must(WithTheme(cfg))

	picture, err := factory.CreateOptimizedPicture("theme:bills.svg", "Bills")
	if err != nil {
		t.Fatalf("create picture: %v", err)
	}
	if got, _ := picture.LastChild().Attr("src"); got != "/assets/themes/nfl/bills.svg?width=750&format=svg&optimize=medium" {
		t.Fatalf("src = %q", got)
	}

	if _, err := factory.CreateOptimizedPicture("theme:missing", "x"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("error = %v, want ErrInvalidPath", err)
	}
	if _, err := Must().CreateOptimizedPicture("theme:bills.svg", "x"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected error without resolver, got %v", err)
	}
}

func TestFactoryFuncAdapter(t *testing.T) {
	var calls []string
	fn := FactoryFunc(func(path, alt string) (*dom.Element, error) {
		calls = append(calls, path+"|"+alt)
		return dom.NewElement("img"), nil
	})
	if _, err := fn.CreateOptimizedPicture("/a.png", "A"); err != nil {
		t.Fatalf("adapter: %v", err)
	}
	if diff := cmp.Diff([]string{"/a.png|A"}, calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejectsInvalidBase(t *testing.T) {
	if _, err := New(WithBaseURL("http://[::1")); err == nil {
		t.Fatalf("expected invalid base url error")
	}
}
