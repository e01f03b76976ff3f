package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"car-rental/internal/data/entity"
	"car-rental/internal/dto/response"
	"car-rental/internal/usecase"
	"car-rental/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStorage struct {
	objects map[string]storage.Object
	putErr  error
}

func (m *memStorage) Put(_ context.Context, obj storage.Object) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	body, _ := io.ReadAll(obj.Body)
	obj.Body = bytes.NewReader(body)
	obj.Size = int64(len(body))
	m.objects[obj.Key] = obj
	return "https://bucket.example.com/" + obj.Key, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

type memDocuments struct {
	docs []*entity.CarDocument
	err  error
}

func (m *memDocuments) Insert(_ context.Context, doc *entity.CarDocument) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.docs = append(m.docs, doc)
	return "65a1f0c2e4b0a1b2c3d4e5f6", nil
}

func multipartBody(t *testing.T, fields map[string][]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	if withImage {
		part, err := mw.CreateFormFile("carImage", "volvo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func newUploadHandler(store *memStorage, docs *memDocuments) *UploadHandler {
	svc := usecase.NewUploadService(store, docs, nil, zap.NewNop())
	return NewUploadHandler(svc, 1, zap.NewNop())
}

func doUpload(t *testing.T, h *UploadHandler, fields map[string][]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, withImage)
	req := httptest.NewRequest(http.MethodPost, "/api/uploadCar", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadCar(rec, req)
	return rec
}

var carFields = map[string][]string{
	"name":     {"Volvo EX30"},
	"type":     {"Electric Crossover"},
	"price":    {"45000"},
	"location": {"Los Angeles"},
	"features": {"Autopilot,360° Camera", "Fully Electric"},
	"status":   {"Available"},
}

func TestUploadCarHandlerSuccess(t *testing.T) {
	store := &memStorage{objects: map[string]storage.Object{}}
	docs := &memDocuments{}

	rec := doUpload(t, newUploadHandler(store, docs), carFields, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response.UploadCarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Car uploaded successfully", resp.Message)
	assert.True(t, resp.Data.Acknowledged)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", resp.Data.InsertedID)

	require.Len(t, store.objects, 1)
	for key, obj := range store.objects {
		assert.True(t, strings.HasPrefix(key, "cars/"))
		assert.True(t, strings.HasSuffix(key, "_volvo.jpg"))
		assert.Equal(t, "application/octet-stream", obj.ContentType)
		assert.Equal(t, "carImage", obj.Metadata["fieldName"])
		assert.Equal(t, int64(len("jpeg-bytes")), obj.Size)
	}

	require.Len(t, docs.docs, 1)
	assert.Equal(t, 45000.0, docs.docs[0].Price)
	assert.Equal(t, []string{"Autopilot", "360° Camera", "Fully Electric"}, docs.docs[0].Features)
	assert.True(t, strings.HasPrefix(docs.docs[0].Image, "https://bucket.example.com/cars/"))
}

func TestUploadCarHandlerMissingImage(t *testing.T) {
	store := &memStorage{objects: map[string]storage.Object{}}
	docs := &memDocuments{}

	rec := doUpload(t, newUploadHandler(store, docs), carFields, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to upload car"}`, rec.Body.String())
	assert.Empty(t, store.objects)
	assert.Empty(t, docs.docs)
}

func TestUploadCarHandlerInvalidPrice(t *testing.T) {
	for _, price := range []string{"forty", "NaN", "Inf", "-Infinity", "1e400"} {
		t.Run(price, func(t *testing.T) {
			store := &memStorage{objects: map[string]storage.Object{}}
			docs := &memDocuments{}
			fields := map[string][]string{"name": {"Volvo EX30"}, "price": {price}}

			rec := doUpload(t, newUploadHandler(store, docs), fields, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid price"}`, rec.Body.String())
			assert.Empty(t, store.objects)
			assert.Empty(t, docs.docs)
		})
	}
}

func TestUploadCarHandlerInsertFailure(t *testing.T) {
	store := &memStorage{objects: map[string]storage.Object{}}
	docs := &memDocuments{err: errors.New("server selection timeout")}

	rec := doUpload(t, newUploadHandler(store, docs), carFields, true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to upload car"}`, rec.Body.String())
	assert.Empty(t, store.objects)
}

func TestUploadCarHandlerNotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/uploadCar", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUploadHandler(&memStorage{objects: map[string]storage.Object{}}, &memDocuments{}).UploadCar(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
