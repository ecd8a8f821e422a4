package v1

import (
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
	"github.com/worldme/worldme/internal/zone"
)

// ModelToLocationResponse преобразует публичную позицию в DTO для ответа
func ModelToLocationResponse(model *models.BlurredLocation) *BlurredLocationResponse {
	resp := &BlurredLocationResponse{
		UserID:           model.UserID,
		BlurredLatitude:  model.BlurredLatitude,
		BlurredLongitude: model.BlurredLongitude,
		ZoneKey:          model.ZoneKey,
		SharingEnabled:   model.SharingEnabled,
		UpdatedAt:        model.UpdatedAt,
	}
	if model.ZoneKey != nil {
		resp.ZoneName = zone.Name(*model.ZoneKey)
	}
	return resp
}

// MembersToZoneMemberResponses преобразует участников зоны в слайс DTO
func MembersToZoneMemberResponses(members []service.ZoneMember) []*ZoneMemberResponse {
	responses := make([]*ZoneMemberResponse, len(members))
	for i, member := range members {
		responses[i] = &ZoneMemberResponse{
			UserID:           member.Location.UserID,
			BlurredLatitude:  member.Location.BlurredLatitude,
			BlurredLongitude: member.Location.BlurredLongitude,
			ZoneKey:          member.Location.ZoneKey,
			ZoneName:         member.ZoneLabel,
			UpdatedAt:        member.Location.UpdatedAt,
		}
	}
	return responses
}

// ModelToFriendshipResponse преобразует ребро связи в DTO для ответа
func ModelToFriendshipResponse(model *models.FriendshipEdge) *FriendshipResponse {
	return &FriendshipResponse{
		ID:          model.ID,
		RequesterID: model.RequesterID,
		RecipientID: model.RecipientID(),
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToFriendshipResponses преобразует слайс рёбер в слайс DTO
func ModelsToFriendshipResponses(models []*models.FriendshipEdge) []*FriendshipResponse {
	responses := make([]*FriendshipResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToFriendshipResponse(model)
	}
	return responses
}

// DTOToEventModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToEventModel(dto any) *models.Event {
	switch v := dto.(type) {
	case CreateEventRequest:
		return &models.Event{
			Name:        v.Name,
			Description: v.Description,
			Category:    v.Category,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			StartsAt:    v.StartsAt,
		}
	case UpdateEventRequest:
		return &models.Event{
			Name:        v.Name,
			Description: v.Description,
			Category:    v.Category,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			StartsAt:    v.StartsAt,
		}
	}
	return nil
}

// ModelToEventResponse преобразует доменную модель события в DTO для ответа
func ModelToEventResponse(model *models.Event) *EventResponse {
	return &EventResponse{
		ID:          model.ID,
		CreatorID:   model.CreatorID,
		Name:        model.Name,
		Description: model.Description,
		Category:    model.Category,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		ZoneKey:     model.ZoneKey,
		ZoneName:    zone.Name(model.ZoneKey),
		StartsAt:    model.StartsAt,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToEventResponses преобразует слайс событий в слайс DTO
func ModelsToEventResponses(models []*models.Event) []*EventResponse {
	responses := make([]*EventResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEventResponse(model)
	}
	return responses
}

// ModelToMessageResponse преобразует сообщение в DTO для ответа
func ModelToMessageResponse(model *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:          model.ID,
		SenderID:    model.SenderID,
		RecipientID: model.RecipientID,
		Body:        model.Body,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToMessageResponses преобразует слайс сообщений в слайс DTO
func ModelsToMessageResponses(models []*models.Message) []*MessageResponse {
	responses := make([]*MessageResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToMessageResponse(model)
	}
	return responses
}

// ModelToProfileResponse преобразует профиль в DTO для ответа
func ModelToProfileResponse(model *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:      model.UserID,
		DisplayName: model.DisplayName,
		AvatarEmoji: model.AvatarEmoji,
		AvatarURL:   model.AvatarURL,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
