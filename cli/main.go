package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"ytcatalog"
	"ytcatalog/config"
	"ytcatalog/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		cmdServe(args)
	case "playlists":
		cmdPlaylists(args)
	case "videos":
		cmdVideos(args)
	case "episodes":
		cmdEpisodes(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytcatalog - YouTube content catalogue for the DevLokos site

Usage:
  ytcatalog serve [flags]               Run the HTTP API
  ytcatalog playlists                   List the tutorial playlists
  ytcatalog videos <playlist-id>        List the videos of a playlist
  ytcatalog episodes                    List the podcast episodes
  ytcatalog help                        Show this help message

Examples:
  ytcatalog serve --addr :9090                    # Serve on a custom port
  ytcatalog playlists                             # Resolved tutorial playlists
  ytcatalog videos PLPXi7Vgl6Ak8GdfjiCcps1fSTZdEE2qYn
  ytcatalog episodes                              # Podcast feed as episodes

Configuration resolves through Remote Config, then environment variables
(YOUTUBE_API_KEY, YOUTUBE_CHANNEL_ID, ...), then compiled defaults.

For help on specific command: ytcatalog <command> -h
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "Listen address (overrides YTCATALOG_ADDR)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcatalog serve [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		settings.Addr = *addr
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	srv := server.New(settings, config.Default(), &server.Options{Logger: logger})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", settings.Addr).Msg("serving catalogue")
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func cmdPlaylists(args []string) {
	fs := flag.NewFlagSet("playlists", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcatalog playlists\n")
	}
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Resolving tutorial playlists...\n")
	playlists, err := ytcatalog.TutorialPlaylists(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching playlists: %v\n", err)
		os.Exit(1)
	}

	if len(playlists) == 0 {
		fmt.Println("No playlists found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYLIST ID\tTITLE\tVIDEOS")
	for _, p := range playlists {
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, truncate(p.Title, 50), p.ItemCount)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d playlists\n", len(playlists))
}

func cmdVideos(args []string) {
	fs := flag.NewFlagSet("videos", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcatalog videos <playlist-id>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing playlist-id\n")
		fs.Usage()
		os.Exit(1)
	}

	playlistID := argv[0]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Fetching videos from %s...\n", playlistID)
	videos, err := ytcatalog.PlaylistVideos(ctx, playlistID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching videos: %v\n", err)
		os.Exit(1)
	}

	if len(videos) == 0 {
		fmt.Println("No videos found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tTITLE\tDURATION\tPUBLISHED")
	for _, v := range videos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			v.ID,
			truncate(v.Title, 50),
			v.Duration,
			v.PublishedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(videos))
}

func cmdEpisodes(args []string) {
	fs := flag.NewFlagSet("episodes", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcatalog episodes\n")
	}
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Fetching podcast episodes...\n")
	episodes, err := ytcatalog.Episodes(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching episodes: %v\n", err)
		os.Exit(1)
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tGUEST\tDURATION\tDATE")
	for _, e := range episodes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.Number,
			truncate(e.Title, 40),
			truncate(e.Guest, 25),
			e.Duration,
			e.Date,
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d episodes\n", len(episodes))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
