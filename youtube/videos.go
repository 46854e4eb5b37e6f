package youtube

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	yt "google.golang.org/api/youtube/v3"
)

// ListPlaylistVideos retrieves every video in a playlist with full metadata,
// sorted by publish date descending. The result is fully materialized; on any
// provider failure the whole call errors and nothing partial is returned.
//
// Membership pages are fetched strictly sequentially (each page token comes
// from the previous response). The detail batches are independent, so they
// run concurrently and are reassembled by video id before the sort.
func (c *Client) ListPlaylistVideos(ctx context.Context, playlistID string) ([]Video, error) {
	ids, err := c.collectMemberIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Video{}, nil
	}

	details, err := c.fetchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(ids))
	for _, id := range ids {
		item, ok := details[id]
		if !ok {
			// Deleted or private video: the membership record survives but
			// the details call omits it. Skip, don't fail the aggregation.
			continue
		}
		videos = append(videos, mapVideo(item))
	}

	// Newest first. Stable so provider order breaks publish-date ties.
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})

	return videos, nil
}

// collectMemberIDs pages through the playlist membership records and returns
// the member video ids in provider order, deduplicated.
func (c *Client) collectMemberIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string
	seen := make(map[string]struct{})

	pageToken := ""
	for {
		call := c.svc.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, wrapProvider("playlistItems.list", err)
		}
		if len(resp.Items) == 0 {
			break
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			id := item.Snippet.ResourceId.VideoId
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// fetchDetails batch-fetches snippet and content details for the given video
// ids, at most 50 per call, and keys the results by id.
func (c *Client) fetchDetails(ctx context.Context, ids []string) (map[string]*yt.Video, error) {
	var batches [][]string
	for start := 0; start < len(ids); start += pageSize {
		end := start + pageSize
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		details  = make(map[string]*yt.Video, len(ids))
		firstErr error
	)
	sem := make(chan struct{}, c.detailWorkers)

	for _, batch := range batches {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(batch []string) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails"}).
				Id(strings.Join(batch, ",")).
				Context(ctx).
				Do()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = wrapProvider("videos.list", err)
				}
				return
			}
			for _, item := range resp.Items {
				details[item.Id] = item
			}
		}(batch)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return details, nil
}

func mapVideo(item *yt.Video) Video {
	v := Video{ID: item.Id}
	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.Description = item.Snippet.Description
		v.ThumbnailURL = videoThumbnail(item.Snippet.Thumbnails)
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			v.PublishedAt = t
		}
	}
	if item.ContentDetails != nil {
		v.DurationISO = item.ContentDetails.Duration
	}
	v.Duration = FormatDuration(v.DurationISO)
	return v
}

// videoThumbnail walks the quality ladder: maxres, high, medium, default.
func videoThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*yt.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}
