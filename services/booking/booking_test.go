package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "helphive/database/repository/booking"
	workerRepo "helphive/database/repository/worker"
	"helphive/models"

	"go.mongodb.org/mongo-driver/bson"
)

type bookingRepoStub struct {
	bookings  map[string]*models.Booking
	createErr error
	updateErr error
}

func newBookingRepoStub() *bookingRepoStub {
	return &bookingRepoStub{bookings: make(map[string]*models.Booking)}
}

func (s *bookingRepoStub) Create(b *models.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *b
	s.bookings[b.ID] = &clone
	return nil
}

func (s *bookingRepoStub) GetByID(id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *bookingRepoStub) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *bookingRepoStub) GetByClerkID(clerkID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.ClerkID == clerkID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) GetByWorker(workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) GetByWorkerAndDate(workerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.WorkerID == workerID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) GetRatedByWorker(workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.WorkerID == workerID && b.Rating != nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) UpdateWithDocument(id string, updateDoc bson.M) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if v, ok := updateDoc["status"].(string); ok {
		b.Status = v
	}
	if v, ok := updateDoc["rating"].(int); ok {
		rating := v
		b.Rating = &rating
	}
	if v, ok := updateDoc["review"].(string); ok {
		review := v
		b.Review = &review
	}
	return nil
}

func (s *bookingRepoStub) Delete(id string) error {
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

type dashboardRepoStub struct {
	entries   map[string]*models.DashboardEntry // keyed by booking id
	insertErr error
}

func newDashboardRepoStub() *dashboardRepoStub {
	return &dashboardRepoStub{entries: make(map[string]*models.DashboardEntry)}
}

func (s *dashboardRepoStub) Insert(e *models.DashboardEntry) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	clone := *e
	s.entries[e.BookingID] = &clone
	return nil
}

func (s *dashboardRepoStub) SyncStatus(bookingID, status string) error {
	if e, ok := s.entries[bookingID]; ok {
		e.Status = status
	}
	return nil
}

func (s *dashboardRepoStub) Remove(bookingID string) error {
	delete(s.entries, bookingID)
	return nil
}

func (s *dashboardRepoStub) GetByBookingID(bookingID string) (*models.DashboardEntry, error) {
	e, ok := s.entries[bookingID]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (s *dashboardRepoStub) GetByWorker(workerID string) ([]models.DashboardEntry, error) {
	var out []models.DashboardEntry
	for _, e := range s.entries {
		if e.WorkerID == workerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type workerRepoStub struct {
	workers  map[string]*models.Worker
	averages map[string]float64
}

func newWorkerRepoStub() *workerRepoStub {
	return &workerRepoStub{
		workers:  make(map[string]*models.Worker),
		averages: make(map[string]float64),
	}
}

func (s *workerRepoStub) Create(w *models.Worker) error {
	clone := *w
	s.workers[w.ID] = &clone
	return nil
}

func (s *workerRepoStub) GetByID(id string) (*models.Worker, error) {
	w, ok := s.workers[id]
	if !ok {
		return nil, workerRepo.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (s *workerRepoStub) GetByClerkID(clerkID string) (*models.Worker, error) {
	for _, w := range s.workers {
		if w.ClerkID == clerkID {
			clone := *w
			return &clone, nil
		}
	}
	return nil, workerRepo.ErrNotFound
}

func (s *workerRepoStub) GetActive() ([]models.Worker, error) {
	var out []models.Worker
	for _, w := range s.workers {
		if w.Status != models.WorkerStatusRejected {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (s *workerRepoStub) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := s.workers[id]; !ok {
		return workerRepo.ErrNotFound
	}
	return nil
}

func (s *workerRepoStub) UpdateByClerkID(clerkID string, updateDoc bson.M) (*models.Worker, error) {
	w, err := s.GetByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workerRepoStub) SetAverageRating(id string, average float64) error {
	if w, ok := s.workers[id]; ok {
		w.AverageRating = average
	}
	s.averages[id] = average
	return nil
}

type reminderSchedulerStub struct {
	scheduled []models.ReminderPayload
}

func (s *reminderSchedulerStub) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	s.scheduled = append(s.scheduled, payload)
	return nil
}

func newService() (*DefaultBookingService, *bookingRepoStub, *dashboardRepoStub, *workerRepoStub) {
	repo := newBookingRepoStub()
	dash := newDashboardRepoStub()
	workers := newWorkerRepoStub()
	svc := &DefaultBookingService{Repo: repo, Dashboard: dash, Workers: workers}
	return svc, repo, dash, workers
}

func validInput() models.BookingInput {
	return models.BookingInput{
		ClerkID:  "user_123",
		WorkerID: "W1",
		Service:  "Cleaning",
		Date:     "2024-01-01",
		Time:     "10:00",
		Address:  "123 St",
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	svc, repo, dash, _ := newService()

	b, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("expected status Pending, got %q", b.Status)
	}
	if b.CustomerName != "Customer" {
		t.Errorf("expected default customer name, got %q", b.CustomerName)
	}
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Fatal("booking was not persisted")
	}

	entry, _ := dash.GetByBookingID(b.ID)
	if entry == nil {
		t.Fatal("dashboard projection entry was not created")
	}
	if entry.Status != b.Status {
		t.Errorf("projection status %q does not match booking status %q", entry.Status, b.Status)
	}
	if entry.WorkerID != b.WorkerID {
		t.Errorf("projection worker %q does not match booking worker %q", entry.WorkerID, b.WorkerID)
	}
}

func TestCreateBookingMissingRequiredField(t *testing.T) {
	svc, repo, dash, _ := newService()

	for _, mutate := range []func(*models.BookingInput){
		func(in *models.BookingInput) { in.WorkerID = "" },
		func(in *models.BookingInput) { in.Date = "" },
		func(in *models.BookingInput) { in.Time = "" },
		func(in *models.BookingInput) { in.Address = "" },
	} {
		in := validInput()
		mutate(&in)
		_, err := svc.Create(in)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}
	if len(repo.bookings) != 0 {
		t.Errorf("expected no bookings persisted, got %d", len(repo.bookings))
	}
	if len(dash.entries) != 0 {
		t.Errorf("expected no projection entries, got %d", len(dash.entries))
	}
}

func TestCreateBookingSurvivesProjectionFailure(t *testing.T) {
	svc, repo, dash, _ := newService()
	dash.insertErr = errors.New("store interrupted")

	b, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create should succeed despite projection failure, got %v", err)
	}
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Fatal("booking was not persisted")
	}
}

func TestCreateBookingSchedulesReminder(t *testing.T) {
	svc, _, _, _ := newService()
	reminders := &reminderSchedulerStub{}
	svc.Reminders = reminders

	in := validInput()
	in.Date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(reminders.scheduled) != 1 {
		t.Fatalf("expected 1 reminder scheduled, got %d", len(reminders.scheduled))
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc, _, _, _ := newService()
	if _, err := svc.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBookingJoinsWorker(t *testing.T) {
	svc, _, _, workers := newService()
	workers.Create(&models.Worker{ID: "W1", FullName: "Asha N", Service: "Cleaning", City: "Pune", AverageRating: 4.5})

	created, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	b, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if b.Worker == nil {
		t.Fatal("expected worker join on booking read")
	}
	if b.Worker.FullName != "Asha N" || b.Worker.AverageRating != 4.5 {
		t.Errorf("unexpected worker join: %+v", b.Worker)
	}
}

func TestListByWorkerJoinsWorker(t *testing.T) {
	svc, _, _, workers := newService()
	workers.Create(&models.Worker{ID: "W1", FullName: "Asha N", Service: "Cleaning", City: "Pune"})

	if _, err := svc.Create(validInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bookings, err := svc.ListByWorker("W1")
	if err != nil {
		t.Fatalf("ListByWorker returned error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	if bookings[0].Worker == nil || bookings[0].Worker.FullName != "Asha N" {
		t.Errorf("expected worker join on the worker's booking list, got %+v", bookings[0].Worker)
	}
}

func TestListByCustomerGuardsEmptySubject(t *testing.T) {
	svc, _, _, _ := newService()
	if _, err := svc.Create(validInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bookings, err := svc.ListByCustomer("")
	if err != nil {
		t.Fatalf("ListByCustomer returned error: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("empty subject must yield an empty list, got %d bookings", len(bookings))
	}

	bookings, err = svc.ListByCustomer("user_123")
	if err != nil {
		t.Fatalf("ListByCustomer returned error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking for subject, got %d", len(bookings))
	}
}

func TestPatchStatusSyncsProjection(t *testing.T) {
	svc, _, dash, _ := newService()
	created, _ := svc.Create(validInput())

	status := models.BookingStatusConfirmed
	b, err := svc.Patch(created.ID, models.BookingPatch{Status: &status})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("expected status Confirmed, got %q", b.Status)
	}

	entry, _ := dash.GetByBookingID(created.ID)
	if entry == nil || entry.Status != models.BookingStatusConfirmed {
		t.Fatalf("projection status not synced: %+v", entry)
	}
}

func TestPatchStatusWithMissingProjectionIsNoop(t *testing.T) {
	svc, _, dash, _ := newService()
	created, _ := svc.Create(validInput())
	dash.Remove(created.ID)

	status := models.BookingStatusCompleted
	if _, err := svc.Patch(created.ID, models.BookingPatch{Status: &status}); err != nil {
		t.Fatalf("Patch should tolerate a missing projection entry, got %v", err)
	}
}

func TestPatchAppliesOnlyPresentFields(t *testing.T) {
	svc, repo, _, _ := newService()
	created, _ := svc.Create(validInput())

	review := "great work"
	if _, err := svc.Patch(created.ID, models.BookingPatch{Review: &review}); err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}

	stored := repo.bookings[created.ID]
	if stored.Status != models.BookingStatusPending {
		t.Errorf("status should be untouched, got %q", stored.Status)
	}
	if stored.Rating != nil {
		t.Errorf("rating should be untouched, got %v", *stored.Rating)
	}
	if stored.Review == nil || *stored.Review != review {
		t.Errorf("review not applied: %v", stored.Review)
	}
}

func TestPatchRejectsOutOfRangeRating(t *testing.T) {
	svc, _, _, _ := newService()
	created, _ := svc.Create(validInput())

	for _, rating := range []int{0, 6, -1} {
		r := rating
		_, err := svc.Patch(created.ID, models.BookingPatch{Rating: &r})
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating %d: expected ValidationError, got %v", rating, err)
		}
	}
}

func TestPatchRatingRecomputesWorkerAverage(t *testing.T) {
	svc, _, _, workers := newService()
	workers.Create(&models.Worker{ID: "W1", FullName: "Asha N"})
	created, _ := svc.Create(validInput())

	status := models.BookingStatusCompleted
	rating := 5
	b, err := svc.Patch(created.ID, models.BookingPatch{Status: &status, Rating: &rating})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if b.Status != models.BookingStatusCompleted {
		t.Errorf("expected status Completed, got %q", b.Status)
	}
	if got := workers.averages["W1"]; got != 5.0 {
		t.Errorf("expected worker average 5.0, got %v", got)
	}
}

func TestPatchNotFound(t *testing.T) {
	svc, _, _, _ := newService()
	status := models.BookingStatusConfirmed
	if _, err := svc.Patch("missing", models.BookingPatch{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesBookingAndProjection(t *testing.T) {
	svc, _, dash, _ := newService()
	created, _ := svc.Create(validInput())

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	entry, _ := dash.GetByBookingID(created.ID)
	if entry != nil {
		t.Fatal("projection entry should be removed with its booking")
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _, _ := newService()
	if err := svc.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStrictStatusPolicy(t *testing.T) {
	svc, _, _, _ := newService()
	svc.StrictStatus = true

	created, _ := svc.Create(validInput())
	completed := models.BookingStatusCompleted
	if _, err := svc.Patch(created.ID, models.BookingPatch{Status: &completed}); err != nil {
		t.Fatalf("Pending→Completed should be allowed, got %v", err)
	}

	pending := models.BookingStatusPending
	_, err := svc.Patch(created.ID, models.BookingPatch{Status: &pending})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Completed→Pending should be rejected under strict policy, got %v", err)
	}

	bogus := "Archived"
	if _, err := svc.Patch(created.ID, models.BookingPatch{Status: &bogus}); !errors.As(err, &verr) {
		t.Fatalf("unknown status should be rejected under strict policy, got %v", err)
	}
}

func TestLenientStatusPolicyAcceptsAnyTransition(t *testing.T) {
	svc, _, _, _ := newService()
	created, _ := svc.Create(validInput())

	// The legacy API accepts any enumerated status at any time.
	for _, status := range []string{
		models.BookingStatusCompleted,
		models.BookingStatusPending,
		models.BookingStatusCancelled,
		models.BookingStatusConfirmed,
	} {
		s := status
		if _, err := svc.Patch(created.ID, models.BookingPatch{Status: &s}); err != nil {
			t.Fatalf("lenient policy rejected %s: %v", status, err)
		}
	}
}
