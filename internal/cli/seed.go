package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iliyamo/fyyur/internal/app"
	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/service"
)

// SeedFile is the YAML layout read by "fyyurctl seed".  Shows name their
// venue and artist, which must be listed in the same file.
type SeedFile struct {
	Venues  []directory.VenueFields  `yaml:"venues"`
	Artists []directory.ArtistFields `yaml:"artists"`
	Shows   []SeedShow               `yaml:"shows"`
}

type SeedShow struct {
	Venue     string `yaml:"venue"`
	Artist    string `yaml:"artist"`
	StartTime string `yaml:"start_time"`
}

// SeedStats counts the records a seed run created.
type SeedStats struct {
	Venues, Artists, Shows int
}

// ReadSeedFile decodes a seed file, rejecting unknown keys.
func ReadSeedFile(r io.Reader) (SeedFile, error) {
	var f SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return SeedFile{}, fmt.Errorf("decode seed file: %w", err)
	}
	return f, nil
}

// Seed creates every record of f through dir, so the usual validation and
// reference checks apply.  It stops at the first failure.
func Seed(ctx context.Context, dir *service.Directory, f SeedFile) (SeedStats, error) {
	var st SeedStats
	venues := make(map[string]uint64, len(f.Venues))
	artists := make(map[string]uint64, len(f.Artists))

	for i, vf := range f.Venues {
		v, err := dir.CreateVenue(ctx, vf)
		if err != nil {
			return st, fmt.Errorf("venue #%d: %w", i+1, err)
		}
		venues[v.Name] = v.ID
		st.Venues++
	}
	for i, af := range f.Artists {
		a, err := dir.CreateArtist(ctx, af)
		if err != nil {
			return st, fmt.Errorf("artist #%d: %w", i+1, err)
		}
		artists[a.Name] = a.ID
		st.Artists++
	}
	for i, s := range f.Shows {
		vid, ok := venues[s.Venue]
		if !ok {
			return st, fmt.Errorf("show #%d: unknown venue %q", i+1, s.Venue)
		}
		aid, ok := artists[s.Artist]
		if !ok {
			return st, fmt.Errorf("show #%d: unknown artist %q", i+1, s.Artist)
		}
		_, err := dir.CreateShow(ctx, directory.ShowFields{
			VenueID:   strconv.FormatUint(vid, 10),
			ArtistID:  strconv.FormatUint(aid, 10),
			StartTime: s.StartTime,
		})
		if err != nil {
			return st, fmt.Errorf("show #%d: %w", i+1, err)
		}
		st.Shows++
	}
	return st, nil
}

func newSeedCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load venues, artists and shows from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fh, err := os.Open(file)
			if err != nil {
				return err
			}
			defer fh.Close()
			f, err := ReadSeedFile(fh)
			if err != nil {
				return err
			}

			cfg, log, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			st, err := Seed(cmd.Context(), a.Dir, f)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d venues, %d artists, %d shows\n", okMark("✔"), st.Venues, st.Artists, st.Shows)
			if err != nil {
				fmt.Fprintf(out, "%s seeding stopped early\n", warnMark("!"))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
