package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Keys understood in account and region sections of the ec2utils file
const (
	AccessKeyIDKey      = "access_key_id"
	SecretAccessKeyKey  = "secret_access_key"
	SSHKeyNameKey       = "ssh_key_name"
	SSHPrivateKeyKey    = "ssh_private_key"
	UserKey             = "user"
	LauncherImageKey    = "ami"
	InstanceTypeKey     = "instance_type"
	SubnetIDKey         = "subnet_id"
	SecurityGroupIDsKey = "security_group_ids"
)

const DefaultFileName = ".ec2utils.conf"

// File is a parsed ec2utils configuration. Settings live in [account-<name>] sections
// and may be overridden per region in [region-<name>] sections.
type File struct {
	cfg *ini.File
}

// AccountSettings are the resolved settings of one account in one region
type AccountSettings struct {
	Account          string
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	SSHKeyName       string
	SSHPrivateKey    string
	User             string
	LauncherImage    string
	InstanceType     string
	SubnetID         string
	SecurityGroupIDs []string
}

func accountSection(account string) string {
	return "account-" + account
}

func regionSection(region string) string {
	return "region-" + region
}

// DefaultPath is the ec2utils file in the user's home directory
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

func NewFromReader(r io.Reader) (File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("reading configuration: %w", err)
	}

	cfg, err := ini.Load(b)
	if err != nil {
		return File{}, fmt.Errorf("parsing configuration: %w", err)
	}

	return File{cfg: cfg}, nil
}

// Load parses the ec2utils file at path
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening configuration file %s: %w", path, err)
	}
	defer f.Close()

	return NewFromReader(f)
}

// Get looks up key for the account. A value in the region's section wins over the
// account's value.
func (f File) Get(account, region, key string) (string, error) {
	if region != "" {
		if section, err := f.cfg.GetSection(regionSection(region)); err == nil && section.HasKey(key) {
			if value := section.Key(key).String(); value != "" {
				return value, nil
			}
		}
	}

	if account == "" {
		return "", fmt.Errorf("no account given, cannot look up %s", key)
	}

	section, err := f.cfg.GetSection(accountSection(account))
	if err != nil {
		return "", fmt.Errorf("account %s not found in configuration", account)
	}

	return section.Key(key).String(), nil
}

// Account resolves every known key for the account in the region
func (f File) Account(account, region string) (AccountSettings, error) {
	settings := AccountSettings{Account: account, Region: region}

	targets := map[string]*string{
		AccessKeyIDKey:     &settings.AccessKeyID,
		SecretAccessKeyKey: &settings.SecretAccessKey,
		SSHKeyNameKey:      &settings.SSHKeyName,
		SSHPrivateKeyKey:   &settings.SSHPrivateKey,
		UserKey:            &settings.User,
		LauncherImageKey:   &settings.LauncherImage,
		InstanceTypeKey:    &settings.InstanceType,
		SubnetIDKey:        &settings.SubnetID,
	}
	for key, target := range targets {
		value, err := f.Get(account, region, key)
		if err != nil {
			return AccountSettings{}, err
		}
		*target = value
	}

	groups, err := f.Get(account, region, SecurityGroupIDsKey)
	if err != nil {
		return AccountSettings{}, err
	}
	settings.SecurityGroupIDs = splitList(groups)

	return settings, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
