package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	"github.com/meigma/multivolume"
)

func newSplitCmd(a *app) *cobra.Command {
	var exclusive bool
	cmd := &cobra.Command{
		Use:   "split <base> [input]",
		Short: "Split a file or stdin into volumes named <base>.NNNN",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			mode := multivolume.ModeWriteTruncate
			if exclusive {
				mode = multivolume.ModeWriteExclusive
			}
			var n int64
			err = multivolume.With(args[0], mode, func(s *multivolume.Stream) error {
				var err error
				n, err = io.Copy(s, in)
				return err
			}, opts...)
			if err != nil {
				return err
			}
			a.log.Info("split complete", "base", args[0], "bytes", n, "size", humanize.IBytes(uint64(n)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&exclusive, "exclusive", "x", false, "Fail if the first volume already exists")
	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join <base> [output]",
		Short: "Concatenate the volumes of <base> into a file or stdout",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts, err := a.options()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				defer func() {
					err = errors.Join(err, f.Close())
				}()
				out = f
			}

			n, err := multivolume.Join(args[0], out, opts...)
			if err != nil {
				return err
			}
			a.log.Info("join complete", "base", args[0], "bytes", n)
			return nil
		},
	}
}

func newCatCmd(a *app) *cobra.Command {
	var offset, length int64
	cmd := &cobra.Command{
		Use:   "cat <base>",
		Short: "Write a byte range of the logical stream to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return multivolume.With(args[0], multivolume.ModeRead, func(s *multivolume.Stream) error {
				if _, err := s.Seek(offset, io.SeekStart); err != nil {
					return err
				}
				var r io.Reader = s
				if length >= 0 {
					r = io.LimitReader(s, length)
				}
				_, err := io.Copy(cmd.OutOrStdout(), r)
				return err
			}, opts...)
		},
	}
	cmd.Flags().Int64Var(&offset, "offset", 0, "Logical offset to start at")
	cmd.Flags().Int64Var(&length, "length", -1, "Number of bytes to write (-1 for the rest)")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	var (
		alg       string
		perVolume bool
	)
	cmd := &cobra.Command{
		Use:   "info <base>",
		Short: "List the volumes of <base> with sizes and digests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			algorithm := digest.Algorithm(alg)
			return multivolume.With(args[0], multivolume.ModeRead, func(s *multivolume.Stream) error {
				var sums []digest.Digest
				if perVolume {
					if sums, err = s.VolumeDigests(cmd.Context(), algorithm); err != nil {
						return err
					}
				}
				total, err := s.Digest(algorithm)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "INDEX\tPATH\tSIZE\tDIGEST")
				for i, v := range s.Volumes() {
					sum := "-"
					if sums != nil {
						sum = sums[i].String()
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", v.Index, v.Path, humanize.IBytes(uint64(v.Size)), sum)
				}
				fmt.Fprintf(tw, "total\t%s\t%s\t%s\n", s.Name(), humanize.IBytes(uint64(s.Size())), total)
				return tw.Flush()
			}, opts...)
		},
	}
	cmd.Flags().StringVar(&alg, "digest", string(digest.Canonical), "Digest algorithm (sha256, sha384, sha512)")
	cmd.Flags().BoolVar(&perVolume, "per-volume", false, "Also digest each volume")
	return cmd
}
