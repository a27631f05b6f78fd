package collections_test

import (
	"math"
	"testing"

	"designdesk/collections"
	"designdesk/services"
	"designdesk/testhelpers"
)

func TestMigrateRoomAreas_BackfillsFromMeasurement(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Backfill Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomActive)
	testhelpers.CreateTestMeasurement(t, app, room.Id, 10, "ft", 12, "ft")

	// Simulate a legacy room without a computed area.
	room.Set("total_sq_ft", 0)
	if err := app.Save(room); err != nil {
		t.Fatalf("reset room: %v", err)
	}

	if err := collections.MigrateRoomAreas(app); err != nil {
		t.Fatalf("MigrateRoomAreas: %v", err)
	}

	updated, err := app.FindRecordById("rooms", room.Id)
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if got := updated.GetFloat("total_sq_ft"); math.Abs(got-120) > 0.001 {
		t.Errorf("total_sq_ft = %v, want 120", got)
	}
}

func TestMigrateRoomAreas_ParksRoomsWithoutMeasurements(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Parked Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", services.RoomNotActive)

	if err := collections.MigrateRoomAreas(app); err != nil {
		t.Fatalf("MigrateRoomAreas: %v", err)
	}

	updated, err := app.FindRecordById("rooms", room.Id)
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if got := updated.GetString("status"); got != string(services.RoomNotActive) {
		t.Errorf("status = %q, want Not Active", got)
	}
	if got := updated.GetFloat("total_sq_ft"); got != 0 {
		t.Errorf("total_sq_ft = %v, want 0 (no measurement)", got)
	}
}
