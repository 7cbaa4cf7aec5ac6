package compliance

import (
	"context"
	"sync"
	"time"

	"license-compliance-system/internal/model"
)

type fakeStore struct {
	mu        sync.Mutex
	licenses  []model.SoftwareLicense
	devices   []model.Device
	events    []model.ComplianceEvent
	listErr   error
	existsErr error
	insertErr error
}

func (s *fakeStore) ListLicenses(_ context.Context) ([]model.SoftwareLicense, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.licenses, nil
}

func (s *fakeStore) ListDevicesWithInstallations(_ context.Context) ([]model.Device, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.devices, nil
}

func (s *fakeStore) EventExists(_ context.Context, licenseID uint, eventType string, since time.Time) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.LicenseID == licenseID && e.EventType == eventType && !e.DetectedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) InsertEvent(_ context.Context, event *model.ComplianceEvent) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

type countingRecorder struct {
	reports    int
	emitted    int
	suppressed int
}

func (r *countingRecorder) ReportGenerated([]model.ComplianceReportRow) { r.reports++ }
func (r *countingRecorder) EventEmitted(string)                        { r.emitted++ }
func (r *countingRecorder) EventSuppressed(string)                     { r.suppressed++ }

func device(id uint, owner string, products ...string) model.Device {
	d := model.Device{ID: id, Hostname: "host", OwnerUserID: owner, DeviceType: "Laptop"}
	for i, p := range products {
		d.Installations = append(d.Installations, model.InstalledSoftware{
			ID:          id*100 + uint(i),
			DeviceID:    id,
			ProductName: p,
		})
	}
	return d
}

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
