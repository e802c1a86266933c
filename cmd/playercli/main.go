// Package main provides the player CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
	"github.com/osa030/19player/internal/gen/player/v1/playerv1connect"
)

var (
	app    = kingpin.New("19player-cli", "19player player client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").Envar("PLAYER_SERVER").String()

	statusCmd = app.Command("status", "Show the player status")

	// play command
	playCmd       = app.Command("play", "Play a track")
	playTrackID   = playCmd.Arg("track-id", "Catalog track ID").Required().String()
	playContext   = playCmd.Flag("context", "Queue context").Enum("album", "artist", "genre", "liked", "tracks")
	playContextID = playCmd.Flag("context-id", "Album, artist or genre ID (defaults to the track's own)").String()
	playTracks    = playCmd.Flag("track", "Track ID for a tracks context (repeatable)").Strings()

	albumCmd     = app.Command("play-album", "Play an album from its first track")
	albumPlayID  = albumCmd.Arg("album-id", "Catalog album ID").Required().String()
	showAlbumCmd = app.Command("album", "Show an album")
	showAlbumID  = showAlbumCmd.Arg("album-id", "Catalog album ID").Required().String()

	// browse commands
	artistCmd  = app.Command("artist", "Show an artist")
	artistID   = artistCmd.Arg("artist-id", "Catalog artist ID").Required().String()
	genreCmd   = app.Command("genre", "Show a genre")
	genreID    = genreCmd.Arg("genre-id", "Catalog genre ID").Required().String()
	genresCmd  = app.Command("genres", "List genres")
	artistsCmd = app.Command("artists", "List artists")
	albumsCmd  = app.Command("albums", "List albums")

	resumeCmd   = app.Command("resume", "Resume playback")
	pauseCmd    = app.Command("pause", "Pause playback")
	toggleCmd   = app.Command("toggle", "Toggle play/pause")
	stopCmd     = app.Command("stop", "Stop and rewind the current track")
	nextCmd     = app.Command("next", "Skip to the next track")
	previousCmd = app.Command("prev", "Restart the track or go to the previous one")
	seekCmd     = app.Command("seek", "Seek within the current track")
	seekPos     = seekCmd.Arg("position", "Position, e.g. 90s or 1m30s").Required().Duration()
	volumeCmd   = app.Command("volume", "Set the volume")
	volumeLevel = volumeCmd.Arg("level", "Level between 0 and 1").Required().Float64()
	muteCmd     = app.Command("mute", "Toggle mute")

	// queue commands
	queueCmd      = app.Command("queue", "Manage the queue")
	queueAddCmd   = queueCmd.Command("add", "Append a track to the queue")
	queueAddID    = queueAddCmd.Arg("track-id", "Catalog track ID").Required().String()
	queueClearCmd = queueCmd.Command("clear", "Clear the queue")

	// view commands
	expandCmd  = app.Command("expand", "Toggle the expanded player view")
	dismissCmd = app.Command("dismiss-upsell", "Dismiss the upsell prompt")

	// library commands
	likeCmd  = app.Command("like", "Like or unlike a track")
	likeID   = likeCmd.Arg("track-id", "Catalog track ID").Required().String()
	likedCmd = app.Command("liked", "List liked songs")

	// subscribe command
	subscribeCmd = app.Command("subscribe", "Subscribe to notifications")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := playerv1connect.NewPlayerServiceClient(http.DefaultClient, *server)
	ctx := context.Background()
	empty := func() *connect.Request[playerv1.Empty] { return connect.NewRequest(&playerv1.Empty{}) }

	switch command {
	case statusCmd.FullCommand():
		printStatus(client.GetStatus(ctx, empty()))
	case playCmd.FullCommand():
		printStatus(client.PlayTrack(ctx, connect.NewRequest(&playerv1.PlayTrackRequest{
			TrackId: *playTrackID,
			Context: queueContext(),
		})))
	case albumCmd.FullCommand():
		printStatus(client.PlayAlbum(ctx, connect.NewRequest(&playerv1.PlayAlbumRequest{AlbumId: *albumPlayID})))
	case showAlbumCmd.FullCommand():
		showAlbum(ctx, client, *showAlbumID)
	case artistCmd.FullCommand():
		showArtist(ctx, client, *artistID)
	case genreCmd.FullCommand():
		showGenre(ctx, client, *genreID)
	case genresCmd.FullCommand():
		listGenres(ctx, client)
	case artistsCmd.FullCommand():
		listArtists(ctx, client)
	case albumsCmd.FullCommand():
		listAlbums(ctx, client)
	case resumeCmd.FullCommand():
		printStatus(client.Play(ctx, empty()))
	case pauseCmd.FullCommand():
		printStatus(client.Pause(ctx, empty()))
	case toggleCmd.FullCommand():
		printStatus(client.TogglePlay(ctx, empty()))
	case stopCmd.FullCommand():
		printStatus(client.Stop(ctx, empty()))
	case nextCmd.FullCommand():
		printStatus(client.Next(ctx, empty()))
	case previousCmd.FullCommand():
		printStatus(client.Previous(ctx, empty()))
	case seekCmd.FullCommand():
		printStatus(client.Seek(ctx, connect.NewRequest(&playerv1.SeekRequest{PositionMs: seekPos.Milliseconds()})))
	case volumeCmd.FullCommand():
		printStatus(client.SetVolume(ctx, connect.NewRequest(&playerv1.SetVolumeRequest{Level: *volumeLevel})))
	case muteCmd.FullCommand():
		printStatus(client.ToggleMute(ctx, empty()))
	case queueAddCmd.FullCommand():
		printStatus(client.AddToQueue(ctx, connect.NewRequest(&playerv1.AddToQueueRequest{TrackId: *queueAddID})))
	case queueClearCmd.FullCommand():
		printStatus(client.ClearQueue(ctx, empty()))
	case expandCmd.FullCommand():
		printStatus(client.ToggleExpandedView(ctx, empty()))
	case dismissCmd.FullCommand():
		printStatus(client.DismissUpsell(ctx, empty()))
	case likeCmd.FullCommand():
		toggleLike(ctx, client, *likeID)
	case likedCmd.FullCommand():
		listLiked(ctx, client)
	case subscribeCmd.FullCommand():
		subscribe(ctx, client)
	}
}

func queueContext() *playerv1.QueueContext {
	if *playContext == "" {
		return nil
	}
	kind := playerv1.QueueContextKind_value["QUEUE_CONTEXT_KIND_"+strings.ToUpper(*playContext)]
	return &playerv1.QueueContext{
		Kind:     playerv1.QueueContextKind(kind),
		Id:       *playContextID,
		TrackIds: *playTracks,
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printStatus(resp *connect.Response[playerv1.StatusResponse], err error) {
	exitOnError(err)
	printPlayerStatus(resp.Msg.Status)
}

func showAlbum(ctx context.Context, client playerv1connect.PlayerServiceClient, albumID string) {
	resp, err := client.GetAlbum(ctx, connect.NewRequest(&playerv1.GetAlbumRequest{AlbumId: albumID}))
	exitOnError(err)

	a := resp.Msg.Album
	fmt.Printf("%s - %s (%d) [%s]\n", a.Title, a.ArtistName, a.ReleaseYear, formatMs(a.TotalDurationMs))
	for _, t := range a.Tracks {
		fmt.Printf("  %2d. %s %s [%s]%s\n", t.TrackNumber, t.Id, t.Title, formatMs(t.DurationMs), likedMark(t))
	}
}

func showArtist(ctx context.Context, client playerv1connect.PlayerServiceClient, id string) {
	resp, err := client.GetArtist(ctx, connect.NewRequest(&playerv1.GetArtistRequest{ArtistId: id}))
	exitOnError(err)

	a := resp.Msg.Artist
	fmt.Printf("%s (%s) [%s]\n", a.Name, a.Id, strings.Join(a.Genres, ", "))
	if a.Bio != "" {
		fmt.Printf("  %s\n", a.Bio)
	}
	printAlbums(resp.Msg.Albums)
	printTracks(resp.Msg.Tracks)
}

func showGenre(ctx context.Context, client playerv1connect.PlayerServiceClient, id string) {
	resp, err := client.GetGenre(ctx, connect.NewRequest(&playerv1.GetGenreRequest{GenreId: id}))
	exitOnError(err)

	g := resp.Msg.Genre
	fmt.Printf("%s (%s)\n", g.Name, g.Id)
	if g.Description != "" {
		fmt.Printf("  %s\n", g.Description)
	}
	if len(resp.Msg.Artists) > 0 {
		fmt.Printf("  Artists (%d):\n", len(resp.Msg.Artists))
		for _, a := range resp.Msg.Artists {
			fmt.Printf("    %s %s\n", a.Id, a.Name)
		}
	}
	printAlbums(resp.Msg.Albums)
	printTracks(resp.Msg.Tracks)
}

func listGenres(ctx context.Context, client playerv1connect.PlayerServiceClient) {
	resp, err := client.ListGenres(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)

	for _, g := range resp.Msg.Genres {
		fmt.Printf("  %-12s %s - %s\n", g.Id, g.Name, g.Description)
	}
}

func listArtists(ctx context.Context, client playerv1connect.PlayerServiceClient) {
	resp, err := client.ListArtists(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)

	for _, a := range resp.Msg.Artists {
		fmt.Printf("  %-12s %s [%s]\n", a.Id, a.Name, strings.Join(a.Genres, ", "))
	}
}

func listAlbums(ctx context.Context, client playerv1connect.PlayerServiceClient) {
	resp, err := client.ListAlbums(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)

	printAlbums(resp.Msg.Albums)
}

func printAlbums(albums []*playerv1.Album) {
	if len(albums) == 0 {
		return
	}
	fmt.Printf("  Albums (%d):\n", len(albums))
	for _, a := range albums {
		fmt.Printf("    %s %s - %s (%d)\n", a.Id, a.Title, a.ArtistName, a.ReleaseYear)
	}
}

func printTracks(tracks []*playerv1.Track) {
	if len(tracks) == 0 {
		return
	}
	fmt.Printf("  Tracks (%d):\n", len(tracks))
	for _, t := range tracks {
		fmt.Printf("    %s %s - %s [%s]%s\n", t.Id, t.Title, t.ArtistName, formatMs(t.DurationMs), likedMark(t))
	}
}

func toggleLike(ctx context.Context, client playerv1connect.PlayerServiceClient, trackID string) {
	resp, err := client.ToggleLike(ctx, connect.NewRequest(&playerv1.ToggleLikeRequest{TrackId: trackID}))
	exitOnError(err)

	if resp.Msg.Liked {
		fmt.Printf("♥ Liked %s\n", resp.Msg.TrackId)
	} else {
		fmt.Printf("♡ Removed %s from liked songs\n", resp.Msg.TrackId)
	}
}

func listLiked(ctx context.Context, client playerv1connect.PlayerServiceClient) {
	resp, err := client.ListLiked(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)

	if len(resp.Msg.Tracks) == 0 {
		fmt.Println("No liked songs yet.")
		return
	}
	fmt.Printf("Liked songs (%d):\n", len(resp.Msg.Tracks))
	for i, t := range resp.Msg.Tracks {
		fmt.Printf("  %2d. %s %s - %s [%s]\n", i+1, t.Id, t.Title, t.ArtistName, formatMs(t.DurationMs))
	}
}

func subscribe(ctx context.Context, client playerv1connect.PlayerServiceClient) {
	stream, err := client.SubscribeNotifications(ctx, connect.NewRequest(&playerv1.SubscribeNotificationsRequest{}))
	exitOnError(err)

	fmt.Println("Subscribed to notifications. Press Ctrl+C to exit.")

	// Handle shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nUnsubscribing...")
		os.Exit(0)
	}()

	for stream.Receive() {
		printNotification(stream.Msg())
	}

	if err := stream.Err(); err != nil {
		fmt.Printf("Stream error: %v\n", err)
	}
}

func formatState(state playerv1.PlaybackState, playing bool) string {
	switch state {
	case playerv1.PlaybackState_PLAYBACK_STATE_IDLE:
		return "⏹  Idle"
	case playerv1.PlaybackState_PLAYBACK_STATE_LOADING:
		return "⏳ Loading"
	case playerv1.PlaybackState_PLAYBACK_STATE_PLAYING:
		return "▶️  Playing"
	case playerv1.PlaybackState_PLAYBACK_STATE_PAUSED:
		if playing {
			return "⏳ Paused (waiting to play)"
		}
		return "⏸  Paused"
	default:
		return "❓ " + state.String()
	}
}

func printNotification(n *playerv1.Notification) {
	fmt.Printf("\n[Sequence: %d] ", n.SequenceNo)

	// Progress is frequent; keep it to one line
	if n.Type == playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS && n.Status != nil {
		fmt.Printf("progress %s / %s\n", formatMs(n.Status.CurrentTimeMs), formatMs(n.Status.DurationMs))
		return
	}

	label := strings.TrimPrefix(n.Type.String(), "NOTIFICATION_TYPE_")
	fmt.Printf("=== %s ===\n", strings.ReplaceAll(label, "_", " "))
	if n.Type == playerv1.NotificationType_NOTIFICATION_TYPE_LIBRARY_CHANGED {
		fmt.Printf("  Track %s liked: %v\n", n.TrackId, n.Liked)
	}
	if n.Status != nil {
		printPlayerStatus(n.Status)
	}
}

func printPlayerStatus(s *playerv1.PlayerStatus) {
	fmt.Printf("  State: %s\n", formatState(s.State, s.IsPlaying))
	if t := s.CurrentTrack; t != nil {
		fmt.Printf("  Track: %s - %s (%s)%s\n", t.Title, t.ArtistName, t.Id, likedMark(t))
		fmt.Printf("  Album: %s\n", t.AlbumTitle)
		fmt.Printf("  Position: %s / %s\n", formatMs(s.CurrentTimeMs), formatMs(s.DurationMs))
	}
	volume := fmt.Sprintf("%.0f%%", s.Volume*100)
	if s.IsMuted {
		volume += " (muted)"
	}
	fmt.Printf("  Volume: %s\n", volume)
	if len(s.Queue) > 0 {
		fmt.Printf("  Queue (%d/%d):\n", s.QueueIndex+1, len(s.Queue))
		for i, t := range s.Queue {
			marker := "   "
			if int32(i) == s.QueueIndex {
				marker = " ▶ "
			}
			fmt.Printf("  %s%s - %s\n", marker, t.Title, t.ArtistName)
		}
	}
	fmt.Printf("  Entitled: %v  Expanded: %v  Mini player: %v\n", s.Entitled, s.IsExpandedView, s.IsMiniPlayerVisible)
	if s.ShowUpsell {
		fmt.Println("  ★ Subscribe to listen to full tracks")
	}
	if s.LastError != "" {
		fmt.Printf("  Last error: %s\n", s.LastError)
	}
}

func likedMark(t *playerv1.Track) string {
	if t.Liked {
		return " ♥"
	}
	return ""
}

func formatMs(ms int64) string {
	d := (time.Duration(ms) * time.Millisecond).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
