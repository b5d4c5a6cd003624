package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{})
	require.Error(t, err)

	st, err := NewS3Storage(context.Background(), S3Config{
		BucketName: "bucket", Region: "us-east-1", Endpoint: "localhost:9000", AccessKey: "x", SecretKey: "y",
	})
	require.NoError(t, err)
	require.NotNil(t, st.client)
}

type capturedRequest struct {
	method       string
	path         string
	contentType  string
	cacheControl string
	body         string
}

func TestS3Storage_UploadAndDelete(t *testing.T) {
	requests := make(chan capturedRequest, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests <- capturedRequest{
			method:       r.Method,
			path:         r.URL.Path,
			contentType:  r.Header.Get("Content-Type"),
			cacheControl: r.Header.Get("Cache-Control"),
			body:         string(body),
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	st, err := NewS3Storage(context.Background(), S3Config{
		BucketName:     "covers",
		Region:         "us-east-1",
		Endpoint:       ts.URL,
		PublicEndpoint: "cdn.local",
		AccessKey:      "x",
		SecretKey:      "y",
	})
	require.NoError(t, err)

	url, err := st.UploadFile(context.Background(), "covers/1-a.jpg", bytes.NewReader([]byte("jpeg")), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.local/covers/covers/1-a.jpg", url)

	put := <-requests
	assert.Equal(t, http.MethodPut, put.method)
	assert.Equal(t, "/covers/covers/1-a.jpg", put.path)
	assert.Equal(t, "image/jpeg", put.contentType)
	assert.Equal(t, cacheControl, put.cacheControl)
	assert.True(t, strings.Contains(put.body, "jpeg"))

	key, err := st.GetKeyFromURL(url)
	require.NoError(t, err)
	require.NoError(t, st.DeleteFile(context.Background(), key))

	del := <-requests
	assert.Equal(t, http.MethodDelete, del.method)
	assert.Equal(t, "/covers/covers/1-a.jpg", del.path)
}

func TestS3Storage_UploadAndDelete_Error(t *testing.T) {
	st, err := NewS3Storage(context.Background(), S3Config{
		BucketName: "bucket", Region: "us-east-1", Endpoint: "http://127.0.0.1:1", AccessKey: "x", SecretKey: "y",
	})
	require.NoError(t, err)

	_, err = st.UploadFile(context.Background(), "k", bytes.NewBufferString("x"), "image/jpeg")
	require.Error(t, err)

	err = st.DeleteFile(context.Background(), "k")
	require.Error(t, err)
}

func TestS3Storage_GetKeyFromURL(t *testing.T) {
	st := &S3Storage{config: S3Config{BucketName: "b", Region: "us-east-1", Endpoint: "localhost:9000", PublicEndpoint: "cdn.local"}}

	k, err := st.GetKeyFromURL("http://cdn.local/b/covers/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "covers/1.jpg", k)

	k, err = st.GetKeyFromURL("http://localhost:9000/b/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "x.jpg", k)

	aws := &S3Storage{config: S3Config{BucketName: "b", Region: "eu-west-1"}}
	k, err = aws.GetKeyFromURL("https://b.s3.eu-west-1.amazonaws.com/covers/2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "covers/2.jpg", k)

	_, err = aws.GetKeyFromURL("https://example.com/x")
	require.Error(t, err)
	_, err = aws.GetKeyFromURL("https://b.s3.eu-west-1.amazonaws.com/")
	require.Error(t, err)
}

func TestWithScheme(t *testing.T) {
	assert.Equal(t, "http://x", withScheme("x", false))
	assert.Equal(t, "https://x", withScheme("x", true))
	assert.Equal(t, "http://x", withScheme("http://x", true))
	assert.True(t, hasHTTPPrefix("https://x"))
	assert.False(t, hasHTTPPrefix("x"))
}
