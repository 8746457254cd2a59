package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
)

// AttendanceJobs holds the background jobs that keep attendance data
// current: the reconciliation sweep and the device liveness check.
type AttendanceJobs struct {
	reconcileService  attendance.ReconcileService
	deviceRepo        device.DeviceRepository
	reconcileInterval time.Duration
	windowDays        int
	offlineAfter      time.Duration
}

func NewAttendanceJobs(
	reconcileService attendance.ReconcileService,
	deviceRepo device.DeviceRepository,
	reconcileInterval time.Duration,
	windowDays int,
) *AttendanceJobs {
	return &AttendanceJobs{
		reconcileService:  reconcileService,
		deviceRepo:        deviceRepo,
		reconcileInterval: reconcileInterval,
		windowDays:        windowDays,
		offlineAfter:      2 * time.Hour,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Register("reconcile_unprocessed_punches", j.reconcileInterval, j.ReconcileUnprocessedPunches)
	scheduler.Register("mark_stale_devices_offline", 1*time.Hour, j.MarkStaleDevicesOffline)
}

// ReconcileUnprocessedPunches sweeps the recent window and derives
// attendance records for every employee-day with unprocessed punches.
func (j *AttendanceJobs) ReconcileUnprocessedPunches(ctx context.Context) error {
	now := time.Now()
	from := now.AddDate(0, 0, -j.windowDays)

	result, err := j.reconcileService.ReconcileAll(ctx, from, now)
	if err != nil {
		return fmt.Errorf("failed to reconcile punches: %w", err)
	}

	if result.Created+result.Updated+result.Failed > 0 {
		slog.Info("Cron: Reconciliation sweep completed",
			"created", result.Created,
			"updated", result.Updated,
			"skipped", result.Skipped,
			"failed", result.Failed)
	}
	return nil
}

// MarkStaleDevicesOffline flags devices that have not pushed a punch
// recently.
func (j *AttendanceJobs) MarkStaleDevicesOffline(ctx context.Context) error {
	devices, err := j.deviceRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	cutoff := time.Now().Add(-j.offlineAfter)
	marked := 0
	for _, dev := range devices {
		if !dev.IsActive || dev.Status == device.StatusOffline {
			continue
		}
		if dev.LastSeen != nil && dev.LastSeen.After(cutoff) {
			continue
		}

		lastSeen := cutoff
		if dev.LastSeen != nil {
			lastSeen = *dev.LastSeen
		}
		if err := j.deviceRepo.UpdateStatus(ctx, dev.ID, device.StatusOffline, lastSeen); err != nil {
			slog.Error("Cron: Failed to mark device offline", "device_id", dev.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: Marked stale devices offline", "count", marked)
	}
	return nil
}
