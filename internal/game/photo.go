package game

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	_ "golang.org/x/image/webp"

	"github.com/iburimskiy/valentine/internal/config"
)

// ErrNoPhoto means neither the configured photo nor the fallback could be shown
var ErrNoPhoto = errors.New("no photo available")

type photoResult struct {
	img      image.Image
	source   string
	fallback bool
	err      error
}

// photo is the personalisation image. Slow sources (network, file dialog)
// deliver into results and are picked up by poll on the update loop.
type photo struct {
	image   *ebiten.Image
	source  string
	loading bool
	err     error
	results chan photoResult
	client  *http.Client
}

func newPhoto() *photo {
	return &photo{
		results: make(chan photoResult, 2),
		client:  &http.Client{Timeout: config.PhotoFetchTimeout},
	}
}

// load shows the photo at path, or starts fetching the fallback if it cannot be read
func (p *photo) load(path string) {
	img, err := decodePhotoFile(path)
	if err == nil {
		p.set(img, path)
		return
	}
	log.Printf("photo %q unavailable, using fallback: %v", path, err)
	p.fetchFallback()
}

func (p *photo) fetchFallback() {
	p.loading = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.PhotoFetchTimeout)
		defer cancel()
		img, err := fetchPhoto(ctx, p.client, config.FallbackPhotoURL)
		p.results <- photoResult{img: img, source: config.FallbackPhotoURL, fallback: true, err: err}
	}()
}

// pick asks the user for another photo with a native dialog
func (p *photo) pick() {
	if p.loading {
		return
	}
	p.loading = true
	go func() {
		filename, err := zenity.SelectFile(
			zenity.Title("Choose a photo"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.jpg", "*.jpeg", "*.png", "*.webp"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				err = nil
			}
			p.results <- photoResult{err: err}
			return
		}
		img, err := decodePhotoFile(filename)
		p.results <- photoResult{img: img, source: filename, err: err}
	}()
}

// poll applies a finished load, if any
func (p *photo) poll() {
	select {
	case r := <-p.results:
		p.loading = false
		if r.err != nil {
			log.Printf("photo load failed: %v", r.err)
			if r.fallback {
				p.err = fmt.Errorf("%w: %v", ErrNoPhoto, r.err)
			}
			return
		}
		if r.img == nil {
			return
		}
		p.set(r.img, r.source)
	default:
	}
}

func (p *photo) set(img image.Image, source string) {
	p.image = ebiten.NewImageFromImage(img)
	p.source = source
	p.err = nil
	log.Printf("photo loaded from %s", source)
}

func decodePhotoFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func fetchPhoto(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/jpeg,image/png,image/webp")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch photo: %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode fetched photo: %w", err)
	}
	return img, nil
}
