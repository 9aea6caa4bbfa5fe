package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"memeboard-api/internal/client"
	"memeboard-api/internal/repository"
)

// CleanupJob removes draft media that was uploaded but never attached
// to a project. Drafts older than the retention window are deleted
// from object storage and then from the database.
type CleanupJob struct {
	mediaRepo repository.MediaRepository
	s3Client  client.S3ClientInterface
	retention time.Duration
	logger    *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(mediaRepo repository.MediaRepository, s3Client client.S3ClientInterface, retention time.Duration, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		mediaRepo: mediaRepo,
		s3Client:  s3Client,
		retention: retention,
		logger:    logger,
	}
}

// Run executes one cleanup pass. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	j.logger.Info("starting draft media cleanup", zap.Time("cutoff", cutoff))

	expired, err := j.mediaRepo.FindExpiredDrafts(ctx, cutoff)
	if err != nil {
		j.logger.Error("failed to find expired draft media", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		j.logger.Info("no expired draft media found")
		return
	}

	var deletedIDs []uuid.UUID
	failCount := 0

	for _, media := range expired {
		if err := j.s3Client.DeleteFile(ctx, media.S3Key); err != nil {
			j.logger.Error("failed to delete file from storage",
				zap.String("media_id", media.ID.String()),
				zap.String("s3_key", media.S3Key),
				zap.Error(err),
			)
			failCount++
			continue
		}
		deletedIDs = append(deletedIDs, media.ID)
	}

	if len(deletedIDs) > 0 {
		if err := j.mediaRepo.DeleteBatch(ctx, deletedIDs); err != nil {
			j.logger.Error("failed to delete media records",
				zap.Int("count", len(deletedIDs)),
				zap.Error(err),
			)
			return
		}
	}

	j.logger.Info("draft media cleanup completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deletedIDs)),
		zap.Int("failed", failCount),
	)
}
