package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/apollo1008/donnie-marketplace/internal/api/handlers"
	"github.com/apollo1008/donnie-marketplace/internal/models"
)

func TestMessageHandler_CreateMessage_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockStore := new(MockStore)
	handler := handlers.NewMessageHandler(mockStore)

	r := gin.New()
	r.POST("/api/messages", handler.CreateMessage)

	expected := &models.Message{
		ListingID:   "l1",
		Message:     "hi",
		BuyerEmail:  "buyer@example.com",
		SellerEmail: "seller@example.com",
		Sent:        true,
	}
	mockStore.On("CreateMessage", mock.MatchedBy(func(m models.Message) bool {
		return m.ListingID == "l1" && m.BuyerEmail == "buyer@example.com"
	})).Return(expected, nil)

	body, _ := json.Marshal(map[string]string{
		"listing_id":   "l1",
		"message":      "hi",
		"buyer_email":  "buyer@example.com",
		"seller_email": "seller@example.com",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var respBody models.Message
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.True(t, respBody.Sent)
	mockStore.AssertExpectations(t)
}

func TestMessageHandler_CreateMessage_StoreRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockStore := new(MockStore)
	handler := handlers.NewMessageHandler(mockStore)

	r := gin.New()
	r.POST("/api/messages", handler.CreateMessage)

	mockStore.On("CreateMessage", mock.Anything).
		Return(nil, fmt.Errorf("listing_id, message, buyer_email and seller_email are required"))

	body, _ := json.Marshal(map[string]string{"listing_id": "l1", "message": "hi"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var respBody map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.NotEmpty(t, respBody["error"])
}
