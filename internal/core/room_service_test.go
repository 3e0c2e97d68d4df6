package core

import (
	"context"
	"errors"
	"testing"

	"petcare-backend-go/internal/models"
)

func TestSeedCreatesDefaultRooms(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})

	rooms, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(rooms) != 5 {
		t.Fatalf("seeded %d rooms, want 5", len(rooms))
	}
	for _, room := range rooms {
		if room.Status != models.RoomAvailable {
			t.Errorf("room %s seeded as %s, want Available", room.Label, room.Status)
		}
	}
}

func TestSeedLeavesExistingRoomsAlone(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})
	repo.byKey[roomKey(1, "A")] = &models.Room{Clinic: 1, Label: "A", Status: models.RoomOccupied}

	rooms, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(rooms) != 5 {
		t.Fatalf("seeded %d rooms, want 5", len(rooms))
	}
	got, _ := repo.Get(context.Background(), 1, "A")
	if got.Status != models.RoomOccupied {
		t.Errorf("seeding must not reset an existing room, got %s", got.Status)
	}
}

func TestSetStatusRejectsUnknownValues(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})

	if _, err := svc.SetStatus(context.Background(), 1, "A", models.RoomStatus("Broken")); !errors.Is(err, ErrInvalidRoomStatus) {
		t.Errorf("SetStatus() error = %v, want ErrInvalidRoomStatus", err)
	}
	if len(repo.byKey) != 0 {
		t.Error("a rejected status must not create a room record")
	}
	if _, err := svc.SetStatus(context.Background(), 1, "", models.RoomAvailable); !errors.Is(err, ErrEmptyRoomLabel) {
		t.Errorf("SetStatus() error = %v, want ErrEmptyRoomLabel", err)
	}
}

func TestSetStatusCreatesRoomLazily(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})

	room, err := svc.SetStatus(context.Background(), 2, "F", models.RoomReserved)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if room.Clinic != 2 || room.Label != "F" || room.Status != models.RoomReserved {
		t.Errorf("lazily created room = %+v", room)
	}

	// A second write for the same pair updates the one record.
	if _, err := svc.SetStatus(context.Background(), 2, "F", models.RoomCleaning); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	rooms, _ := repo.ListByClinic(context.Background(), 2)
	if len(rooms) != 1 || rooms[0].Status != models.RoomCleaning {
		t.Errorf("clinic 2 rooms = %v, want one room in Cleaning", rooms)
	}
}

func TestSetImageKeepsStatus(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})
	repo.byKey[roomKey(1, "B")] = &models.Room{Clinic: 1, Label: "B", Status: models.RoomOccupied}

	room, err := svc.SetImage(context.Background(), 1, "B", []byte{0xff, 0xd8}, "image/jpeg")
	if err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	if room.ImageURL == "" {
		t.Error("image URL should be stored on the room")
	}
	if room.Status != models.RoomOccupied {
		t.Errorf("setting an image must not change status, got %s", room.Status)
	}
}

func TestSetImageUploadFailure(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{fail: true})

	if _, err := svc.SetImage(context.Background(), 1, "B", []byte{0xff}, "image/jpeg"); err == nil {
		t.Error("a failed upload must fail the image update")
	}
	if len(repo.byKey) != 0 {
		t.Error("no room record should be written when the upload fails")
	}
}

func TestDeleteRoom(t *testing.T) {
	repo := newTestRoomRepo()
	svc := NewRoomService(repo, &testUploader{})
	repo.byKey[roomKey(1, "C")] = &models.Room{Clinic: 1, Label: "C", Status: models.RoomAvailable}

	if err := svc.Delete(context.Background(), 1, "C"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), 1, "C"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Delete() error = %v, want ErrRoomNotFound", err)
	}
}
