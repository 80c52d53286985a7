// server/internal/api/handlers/activity_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"field-sales-api-server/internal/models"
	"field-sales-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

// PunchIn ghi nhận nhân viên bắt đầu ca tại một cửa hàng.
// Request dạng multipart: field "shopId" và file "selfie".
func (h *ActivityHandler) PunchIn(c *gin.Context) {
	staffID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	collection := h.DB.Collection("staff_activities")

	// Không cho punch-in khi vẫn còn ca đang mở
	count, err := collection.CountDocuments(context.Background(), bson.M{"staffId": staffID, "status": "PUNCHED_IN"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for open activity"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You are already punched in"})
		return
	}

	activity := models.StaffActivity{
		StaffID:   staffID,
		Status:    "PUNCHED_IN",
		PunchInAt: time.Now(),
	}

	if shopIDHex := c.PostForm("shopId"); shopIDHex != "" {
		shopID, err := primitive.ObjectIDFromHex(shopIDHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shopId"})
			return
		}
		activity.ShopID = shopID
	}

	// Upload selfie lên S3
	fileHeader, err := c.FormFile("selfie")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selfie file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("selfies/%s.jpg", uuid.New().String())
	url, err := h.S3Uploader.UploadFile(context.Background(), file, objectKey, "image/jpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload selfie"})
		return
	}
	activity.Selfie = models.MediaPointer{
		ID:       uuid.New().String(),
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: "image/jpeg",
	}

	result, err := collection.InsertOne(context.Background(), activity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record punch-in"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		activity.ID = oid
	}

	c.JSON(http.StatusCreated, activity)
}

// PunchOut đóng ca đang mở của nhân viên.
func (h *ActivityHandler) PunchOut(c *gin.Context) {
	staffID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	collection := h.DB.Collection("staff_activities")
	result, err := collection.UpdateOne(context.Background(),
		bson.M{"staffId": staffID, "status": "PUNCHED_IN"},
		bson.M{"$set": bson.M{"status": "PUNCHED_OUT", "punchOutAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record punch-out"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open activity found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Punched out successfully"})
}

// GetMyActivities trả về các ca gần nhất của nhân viên đang đăng nhập.
func (h *ActivityHandler) GetMyActivities(c *gin.Context) {
	staffID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "punchInAt", Value: -1}}).SetLimit(50)
	cursor, err := h.DB.Collection("staff_activities").Find(context.Background(), bson.M{"staffId": staffID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query activities"})
		return
	}
	defer cursor.Close(context.Background())

	var activities []models.StaffActivity
	if err = cursor.All(context.Background(), &activities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode activities"})
		return
	}

	if activities == nil {
		activities = []models.StaffActivity{}
	}

	c.JSON(http.StatusOK, activities)
}
