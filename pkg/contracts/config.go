package contracts

import "strconv"

// StorageOptions configures the object store behind a storage-backed
// driver. The remote backend stores nothing itself and ignores it; drivers
// registered for other URI schemes consume it through ToMap, which flattens
// the set fields into the key/value pairs object stores are configured
// with.
type StorageOptions struct {
	S3    *S3Config
	Azure *AzureConfig
	GCS   *GCSConfig

	// AllowHTTP permits plain-HTTP endpoints, for local object-store
	// stand-ins like MinIO.
	AllowHTTP *bool

	// Extra is merged into ToMap's result last, for keys no typed field
	// covers.
	Extra map[string]string
}

// S3Config holds AWS S3 credentials and addressing.
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	Endpoint        string
}

// AzureConfig holds Azure Blob Storage credentials.
type AzureConfig struct {
	AccountName string
	AccountKey  string
	SASToken    string
}

// GCSConfig holds Google Cloud Storage credentials, either a path to a
// service account file or the key itself.
type GCSConfig struct {
	ServiceAccountPath string
	ServiceAccountKey  string
}

// ToMap flattens the options into object-store configuration keys. Unset
// fields produce no entry. Safe to call on a nil receiver.
func (o *StorageOptions) ToMap() map[string]string {
	out := make(map[string]string)
	if o == nil {
		return out
	}
	if o.S3 != nil {
		putOption(out, "aws_access_key_id", o.S3.AccessKeyID)
		putOption(out, "aws_secret_access_key", o.S3.SecretAccessKey)
		putOption(out, "aws_session_token", o.S3.SessionToken)
		putOption(out, "aws_region", o.S3.Region)
		putOption(out, "aws_endpoint", o.S3.Endpoint)
	}
	if o.Azure != nil {
		putOption(out, "azure_storage_account_name", o.Azure.AccountName)
		putOption(out, "azure_storage_account_key", o.Azure.AccountKey)
		putOption(out, "azure_storage_sas_token", o.Azure.SASToken)
	}
	if o.GCS != nil {
		putOption(out, "google_service_account_path", o.GCS.ServiceAccountPath)
		putOption(out, "google_service_account_key", o.GCS.ServiceAccountKey)
	}
	if o.AllowHTTP != nil {
		out["allow_http"] = strconv.FormatBool(*o.AllowHTTP)
	}
	for key, value := range o.Extra {
		out[key] = value
	}
	return out
}

func putOption(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}
