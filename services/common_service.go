package services

import (
	"context"
	"time"

	"github.com/go-kit/log/level"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/metrics"
	"portfolio-admin-server/types"
)

// listLimit caps list queries; the dashboard shows everything, but an
// unbounded _find is still a bad idea.
const listLimit = 500

const dbTimeout = 10 * time.Second

// destroyAssets issues a best-effort destroy per public id. Failures are
// logged, counted, and returned as warnings; they never abort the caller's
// document write.
func destroyAssets(mediaClient *media.Client, publicIDs []string) []types.CleanupWarning {
	var warnings []types.CleanupWarning
	for _, publicID := range publicIDs {
		if publicID == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		err := mediaClient.Destroy(ctx, publicID)
		cancel()
		if err != nil {
			level.Warn(global.Logger).Log("msg", "media cleanup failed", "publicId", publicID, "error", err.Error())
			metrics.MediaCleanupFailuresCount.Inc()
			warnings = append(warnings, types.CleanupWarning{PublicID: publicID, Reason: err.Error()})
		}
	}
	return warnings
}

// removedIDs returns the ids present in old but absent from new.
func removedIDs(old []string, updated []string) []string {
	keep := make(map[string]struct{}, len(updated))
	for _, id := range updated {
		keep[id] = struct{}{}
	}
	var removed []string
	for _, id := range old {
		if _, ok := keep[id]; !ok {
			removed = append(removed, id)
		}
	}
	return removed
}
