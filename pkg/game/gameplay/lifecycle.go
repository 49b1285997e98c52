package gameplay

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"escaperoom/pkg/game/room"
	"escaperoom/pkg/logger"
)

// loadResult is handed from a loader goroutine to the game thread
type loadResult struct {
	generation uint64
	roomID     string
	room       room.Room
	sprite     room.Sprite
	err        error
}

// LoadRoom clears the scene, shows the loading indicator and starts fetching
// roomID and the player's sprite. The scene is built on a later Update once
// both descriptors and their images are ready. On failure the session stays
// in the loading state.
func (c *Controller) LoadRoom(roomID, playerID string) {
	c.session.PlayerID = playerID
	gen := c.session.BeginLoad(roomID)

	logger.Log.WithFields(logrus.Fields{"room": roomID, "player": playerID}).Debug("Loading room")

	go func() {
		c.results <- c.fetchRoom(context.Background(), gen, roomID, playerID)
	}()
}

// fetchRoom runs off the game thread. It must not touch the session.
func (c *Controller) fetchRoom(ctx context.Context, gen uint64, roomID, playerID string) loadResult {
	res := loadResult{generation: gen, roomID: roomID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := c.source.FetchRoom(gctx, roomID)
		res.room = r
		return err
	})
	g.Go(func() error {
		s, err := c.source.FetchSprite(gctx, playerID)
		res.sprite = s
		return err
	})
	if err := g.Wait(); err != nil {
		res.err = err
		return res
	}

	if err := c.assets.Preload(ctx, res.room.Background, res.sprite.Sprite); err != nil {
		res.err = fmt.Errorf("preload assets: %w", err)
	}
	return res
}

// applyLoadResults drains finished loads without blocking the frame
func (c *Controller) applyLoadResults() {
	for {
		select {
		case res := <-c.results:
			c.applyLoad(res)
		default:
			return
		}
	}
}

func (c *Controller) applyLoad(res loadResult) {
	log := logger.Log.WithField("room", res.roomID)

	if res.generation != c.session.LoadGeneration {
		log.Debug("Dropping stale room load")
		return
	}
	if res.err != nil {
		log.WithError(res.err).Error("Error loading room")
		return
	}

	c.session.ApplyRoom(res.room, res.sprite)
	UpdateHintVisibility(c.session)

	log.WithField("hints", len(c.session.Hints)).Info("Entered room")
}
