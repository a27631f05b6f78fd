package services_test

import (
	"math"
	"testing"
	"time"

	"designdesk/services"
	"designdesk/testhelpers"
)

func TestEligibleRooms_ExcludesQuotedAndCompleted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Eligibility Client")

	eligible := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomNotActive)
	testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", services.RoomInQuotation)
	testhelpers.CreateTestRoom(t, app, client.Id, "Living Room", services.RoomCompleted)
	testhelpers.CreateTestRoom(t, app, client.Id, "Bathroom", services.RoomInProgress)

	rooms, err := services.EligibleRooms(app, client.Id)
	if err != nil {
		t.Fatalf("EligibleRooms: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 eligible room, got %d", len(rooms))
	}
	if rooms[0].Id != eligible.Id {
		t.Errorf("expected room %s, got %s", eligible.Id, rooms[0].Id)
	}
}

func TestSubmitQuotation_AcmeScenario(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Acme")

	first := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomNotActive)
	second := testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", services.RoomInProgress)
	testhelpers.CreateTestProduct(t, app, first.Id, "Kitchen Handles", 500)

	// Only the Not Active room is offered.
	rooms, err := services.EligibleRooms(app, client.Id)
	if err != nil {
		t.Fatalf("EligibleRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Id != first.Id {
		t.Fatalf("expected only the Not Active room to be offered")
	}

	quotation, err := services.SubmitQuotation(app, client.Id, []string{first.Id}, time.Now())
	if err != nil {
		t.Fatalf("SubmitQuotation: %v", err)
	}
	if got := quotation.GetFloat("total_price"); got != 500 {
		t.Errorf("total_price = %v, want 500", got)
	}

	links, err := app.FindRecordsByFilter(
		"quotation_rooms", "quotation = {:q}", "", 0, 0,
		map[string]any{"q": quotation.Id},
	)
	if err != nil || len(links) != 1 {
		t.Fatalf("expected exactly one quotation_rooms row, got %d (err %v)", len(links), err)
	}

	updated, err := app.FindRecordById("rooms", first.Id)
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if got := updated.GetString("status"); got != string(services.RoomInQuotation) {
		t.Errorf("room status = %q, want In Quotation", got)
	}

	// The second room never moved.
	untouched, _ := app.FindRecordById("rooms", second.Id)
	if got := untouched.GetString("status"); got != string(services.RoomInProgress) {
		t.Errorf("unselected room status = %q, want In Progress", got)
	}
}

func TestSubmitQuotation_TotalIsSnapshotOfPrices(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Snapshot Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomActive)
	testhelpers.CreateTestProduct(t, app, room.Id, "Item A", 100)
	product := testhelpers.CreateTestProduct(t, app, room.Id, "Item B", 200)

	// A preview edit persists to the product row before submission.
	product.Set("price", 250.5)
	if err := app.Save(product); err != nil {
		t.Fatalf("edit product: %v", err)
	}

	quotation, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now())
	if err != nil {
		t.Fatalf("SubmitQuotation: %v", err)
	}
	if got := quotation.GetFloat("total_price"); math.Abs(got-350.5) > 0.001 {
		t.Errorf("total_price = %v, want 350.5", got)
	}
}

func TestSubmitQuotation_RejectsIneligibleRoom(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Reject Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomCompleted)

	if _, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now()); err == nil {
		t.Error("expected completed room to be rejected")
	}
}

func TestSubmitQuotation_RejectsForeignRoom(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Owner Client")
	other := testhelpers.CreateTestClient(t, app, "Other Client")
	room := testhelpers.CreateTestRoom(t, app, other.Id, "Kitchen", services.RoomNotActive)

	if _, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now()); err == nil {
		t.Error("expected another client's room to be rejected")
	}
}

func TestSubmitQuotation_AssignsSequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Numbering Client")
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	roomA := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomNotActive)
	roomB := testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", services.RoomNotActive)

	first, err := services.SubmitQuotation(app, client.Id, []string{roomA.Id}, now)
	if err != nil {
		t.Fatalf("first SubmitQuotation: %v", err)
	}
	second, err := services.SubmitQuotation(app, client.Id, []string{roomB.Id}, now)
	if err != nil {
		t.Fatalf("second SubmitQuotation: %v", err)
	}

	if got := first.GetString("quotation_number"); got != "QTN-25-26-001" {
		t.Errorf("first number = %q, want QTN-25-26-001", got)
	}
	if got := second.GetString("quotation_number"); got != "QTN-25-26-002" {
		t.Errorf("second number = %q, want QTN-25-26-002", got)
	}
}

func TestSubmitQuotation_StoresPricePerSqFt(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "SqFt Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomNotActive)
	room.Set("total_sq_ft", 100)
	if err := app.Save(room); err != nil {
		t.Fatalf("set area: %v", err)
	}
	testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	quotation, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now())
	if err != nil {
		t.Fatalf("SubmitQuotation: %v", err)
	}

	links, err := app.FindRecordsByFilter(
		"quotation_rooms", "quotation = {:q}", "", 0, 0,
		map[string]any{"q": quotation.Id},
	)
	if err != nil || len(links) != 1 {
		t.Fatalf("expected one link, got %d (err %v)", len(links), err)
	}
	if got := links[0].GetFloat("room_total_price"); got != 500 {
		t.Errorf("room_total_price = %v, want 500", got)
	}
	if got := links[0].GetFloat("price_per_sq_ft"); math.Abs(got-5) > 0.001 {
		t.Errorf("price_per_sq_ft = %v, want 5", got)
	}
}
