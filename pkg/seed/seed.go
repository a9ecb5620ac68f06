package seed

import (
	"log"
	"time"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
)

// LoadDemoData fills an empty store with a small demo dataset for local
// development. It runs only behind the serve --seed flag.
func LoadDemoData(store *storage.Store) {
	clients := []model.InsertClient{
		{
			Name:        "Ahmed Al Mansouri",
			Email:       "ahmed.mansouri@example.com",
			Phone:       ptr("+971501234567"),
			Nationality: ptr("Emirati"),
			VisaStatus:  ptr(model.VisaStatusNotRequired),
			Source:      ptr(model.ClientSourceReferral),
			ClientType:  ptr(model.ClientTypeInvestor),
		},
		{
			Name:       "Sarah Collins",
			Email:      "sarah.collins@example.com",
			Phone:      ptr("+971529876543"),
			VisaStatus: ptr(model.VisaStatusValid),
			Source:     ptr(model.ClientSourceWebsite),
			ClientType: ptr(model.ClientTypeBuyer),
			Status:     ptr(model.ClientStatusProspect),
		},
		{
			Name:       "Rajesh Patel",
			Email:      "rajesh.patel@example.com",
			Source:     ptr(model.ClientSourceSocialMedia),
			ClientType: ptr(model.ClientTypeTenant),
		},
	}

	clientIDs := make([]int, 0, len(clients))
	for _, input := range clients {
		client, err := store.CreateClient(input)
		if err != nil {
			log.Printf("Skipping client %s: %v", input.Name, err)
			continue
		}
		clientIDs = append(clientIDs, client.ID)
	}

	properties := []model.InsertProperty{
		{
			Title:        "Palm Jumeirah Villa",
			Address:      "Frond K, Palm Jumeirah, Dubai",
			Price:        "5200000.00",
			Bedrooms:     ptr(5),
			Bathrooms:    ptr(6),
			PropertyType: model.PropertyTypeResidential,
			ClientID:     idAt(clientIDs, 0),
		},
		{
			Title:        "Business Bay Office Floor",
			Address:      "Bay Square, Business Bay, Dubai",
			Price:        "3150000.00",
			PropertyType: model.PropertyTypeCommercial,
		},
		{
			Title:        "Jebel Ali Warehouse",
			Address:      "Jebel Ali Industrial Area 1, Dubai",
			Price:        "1875000.00",
			PropertyType: model.PropertyTypeIndustrial,
			Status:       ptr(model.PropertyStatusPending),
		},
	}

	propertyIDs := make([]int, 0, len(properties))
	for _, input := range properties {
		property := store.CreateProperty(input)
		propertyIDs = append(propertyIDs, property.ID)
	}

	meetings := []model.InsertMeeting{
		{
			Title:       "Villa viewing with Ahmed",
			ClientID:    idAt(clientIDs, 0),
			PropertyID:  idAt(propertyIDs, 0),
			ScheduledAt: time.Now().Add(48 * time.Hour),
			Location:    ptr("Palm Jumeirah sales office"),
		},
		{
			Title:       "Contract discussion",
			ClientID:    idAt(clientIDs, 1),
			PropertyID:  idAt(propertyIDs, 1),
			ScheduledAt: time.Now().Add(96 * time.Hour),
			Type:        ptr(model.MeetingTypeContractDiscussion),
		},
		{
			Title:               "Walk-in consultation",
			ScheduledAt:         time.Now().Add(24 * time.Hour),
			Type:                ptr(model.MeetingTypeConsultation),
			ExternalClientName:  ptr("Fatima Noor"),
			ExternalClientEmail: ptr("fatima.noor@example.com"),
		},
	}

	for _, input := range meetings {
		store.CreateMeeting(input)
	}

	store.CreateCustomField(model.InsertCustomField{
		Name:       "preferred_area",
		Label:      "Preferred Area",
		Type:       model.FieldTypeSelect,
		Options:    []string{"Palm Jumeirah", "Downtown", "Business Bay", "JVC"},
		EntityType: model.EntityTypeClient,
	})

	log.Println("Demo data seeded successfully!")
}

func ptr[T any](v T) *T {
	return &v
}

// idAt guards against a partially seeded run, e.g. when every client was
// skipped as a duplicate.
func idAt(ids []int, i int) *int {
	if i >= len(ids) {
		return nil
	}
	return &ids[i]
}
