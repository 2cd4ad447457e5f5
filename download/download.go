// Package download resolves episodes to local media files.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/filesystem"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/network"
	"github.com/podspy-cli/podspy/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var mediaExtensions = []string{
	".mp3", ".m4a", ".m4b", ".mp4", ".aac", ".ogg", ".oga", ".opus", ".wav", ".flac", ".webm", ".part",
}

// DownloadError reports a media file that could not be acquired.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ErrNoFileName is returned when no file name can be derived from a media URL.
var ErrNoFileName = errors.New("cannot determine file name")

// ProgressFunc receives the bytes written so far and the expected total (-1 if unknown).
// The last call of a completed download always has done == total.
type ProgressFunc func(done, total int64)

// Acquirer downloads episodes into a directory, reusing files already there.
type Acquirer struct {
	dir    string
	client *http.Client

	// OnProgress is called while the body is written. Optional.
	OnProgress ProgressFunc
}

// NewAcquirer returns an Acquirer storing files in dir, using the shared network client.
func NewAcquirer(dir string) *Acquirer {
	return &Acquirer{dir: dir, client: network.Client}
}

// WithClient overrides the HTTP client.
func (a *Acquirer) WithClient(client *http.Client) *Acquirer {
	a.client = client
	return a
}

// Path returns where the episode is or would be stored.
func (a *Acquirer) Path(episode *feed.Episode) (string, error) {
	name, err := FileName(episode.MediaURL)
	if err != nil {
		return "", &DownloadError{URL: episode.MediaURL, Err: err}
	}
	return filepath.Join(a.dir, name), nil
}

// Acquire returns the local path of the episode's media file, downloading it
// only when no file of that name exists yet.
func (a *Acquirer) Acquire(ctx context.Context, episode *feed.Episode) (string, error) {
	target, err := a.Path(episode)
	if err != nil {
		return "", err
	}

	fs := filesystem.API()
	if exists, err := fs.Exists(target); err == nil && exists {
		log.Infof("%s already downloaded", target)
		return target, nil
	}

	if err := a.fetch(ctx, episode.MediaURL, target); err != nil {
		return "", &DownloadError{URL: episode.MediaURL, Err: err}
	}

	log.Fields(logrus.Fields{"url": episode.MediaURL, "path": target}).Info("episode downloaded")
	return target, nil
}

func (a *Acquirer) fetch(ctx context.Context, mediaURL, target string) (err error) {
	req, err := network.NewRequest(ctx, mediaURL)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}

	partial := target + ".part"
	file, err := fs.Create(partial)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fs.Remove(partial)
		}
	}()

	var (
		dst      io.Writer = file
		progress *progressWriter
	)
	if a.OnProgress != nil {
		progress = &progressWriter{w: file, total: resp.ContentLength, report: a.OnProgress}
		dst = progress
	}

	if _, err = io.Copy(dst, resp.Body); err != nil {
		_ = file.Close()
		return err
	}
	if progress != nil {
		progress.finish()
	}
	if err = file.Close(); err != nil {
		return err
	}

	return fs.Rename(partial, target)
}

// FileName derives the local file name from the last path segment of a media URL.
// Query and fragment are ignored.
func FileName(mediaURL string) (string, error) {
	u, err := url.Parse(mediaURL)
	if err != nil {
		return "", err
	}

	name := util.SanitizeFilename(path.Base(u.Path))
	if name == "" {
		return "", ErrNoFileName
	}
	return name, nil
}

// IsMedia reports whether name looks like a downloaded episode or an unfinished download.
func IsMedia(name string) bool {
	return lo.Contains(mediaExtensions, strings.ToLower(filepath.Ext(name)))
}

type progressWriter struct {
	w      io.Writer
	done   int64
	total  int64
	report ProgressFunc
}

// finish reports done == total once when the length was not known up front.
func (p *progressWriter) finish() {
	if p.total <= 0 {
		p.report(p.done, p.done)
	}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.done += int64(n)
	p.report(p.done, p.total)
	return n, err
}
