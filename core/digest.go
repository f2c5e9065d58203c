package multivolume

import (
	"context"
	_ "crypto/sha256" // register digest.SHA256
	_ "crypto/sha512" // register digest.SHA384 and digest.SHA512
	"fmt"
	"io"
	"runtime"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
)

// Digest hashes the whole logical stream with alg. The stream position is
// not changed. Only read streams can be digested.
func (s *Stream) Digest(alg digest.Algorithm) (digest.Digest, error) {
	if err := s.checkRead(); err != nil {
		return "", err
	}
	if !alg.Available() {
		return "", fmt.Errorf("%w: %s", digest.ErrDigestUnsupported, alg)
	}
	d := alg.Digester()
	if _, err := io.Copy(d.Hash(), io.NewSectionReader(s, 0, s.Size())); err != nil {
		return "", fmt.Errorf("digest %s: %w", s.base, err)
	}
	return d.Digest(), nil
}

// VolumeDigests hashes every volume concurrently and returns the digests in
// index order. The stream position is not changed.
func (s *Stream) VolumeDigests(ctx context.Context, alg digest.Algorithm) ([]digest.Digest, error) {
	if err := s.checkRead(); err != nil {
		return nil, err
	}
	if !alg.Available() {
		return nil, fmt.Errorf("%w: %s", digest.ErrDigestUnsupported, alg)
	}

	out := make([]digest.Digest, len(s.volumes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range s.volumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d := alg.Digester()
			if _, err := io.Copy(d.Hash(), io.NewSectionReader(v.file, 0, v.size)); err != nil {
				return fmt.Errorf("digest volume %s: %w", v.path, err)
			}
			out[i] = d.Digest()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
