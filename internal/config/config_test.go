package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicYaml = `
server:
  port: 8080
  allowed_origins:
    - "http://localhost:3000"

upload:
  max_file_size_bytes: 52428800
  allowed_mime_types:
    - "image/jpeg"
    - "image/png"

message:
  max_images: 4
  max_content_length: 1000
  max_sender_name_length: 100
`

const privateYaml = `
pg:
  host: "localhost"
  port: 5432
  user: "postgres"
  password: "postgres"
  dbname: "dugun"

cloudinary:
  cloud_name: "demo"
  api_key: "key123"
  api_secret: "secret456"
`

func writeConfigFolder(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(public), 0644))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(private), 0644))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigFolder(t, publicYaml, privateYaml)

	cfg := MustLoad(dir)

	assert.Equal(t, 8080, cfg.Public.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.Server.AllowedOrigins)
	assert.Equal(t, int64(52428800), cfg.Public.Upload.MaxFileSizeBytes)
	assert.Equal(t, []string{"image/jpeg", "image/png"}, cfg.Public.Upload.AllowedMimeTypes)
	assert.Equal(t, 4, cfg.Public.Message.MaxImages)
	assert.Equal(t, 1000, cfg.Public.Message.MaxContentLength)
	assert.Equal(t, 100, cfg.Public.Message.MaxSenderNameLength)

	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
	assert.Equal(t, "dugun", cfg.Private.Pg.Dbname)
	assert.Equal(t, "demo", cfg.Private.Cloudinary.CloudName)
	assert.Equal(t, "key123", cfg.Private.Cloudinary.ApiKey)
	assert.Equal(t, "secret456", cfg.Private.Cloudinary.ApiSecret)
}

func TestMustLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(publicYaml), 0644))

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoadInvalidYaml(t *testing.T) {
	dir := writeConfigFolder(t, "{not yaml", privateYaml)

	assert.Panics(t, func() { MustLoad(dir) })
}
