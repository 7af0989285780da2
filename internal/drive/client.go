package drive

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/ingest"
	"grooming_payroll/internal/retry"
)

const (
	mimeFolder      = "application/vnd.google-apps.folder"
	mimeGoogleSheet = "application/vnd.google-apps.spreadsheet"
	mimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Client fetches weekly spreadsheet workbooks from a Google Drive
// folder using a service account.
type Client struct {
	service *drive.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

var folderURLPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)

// ExtractFolderID pulls the folder ID out of a Drive folder URL, or
// returns the input unchanged when it already is a bare ID.
func ExtractFolderID(urlOrID string) string {
	if m := folderURLPattern.FindStringSubmatch(urlOrID); m != nil {
		return m[1]
	}
	return urlOrID
}

// FetchFolderWorkbooks walks the folder and its subfolders and returns
// every spreadsheet found: .xlsx files are downloaded as-is, native
// Google Sheets are exported to xlsx. Individual file failures are
// logged and skipped.
func (c *Client) FetchFolderWorkbooks(ctx context.Context, folderID string) ([]ingest.Workbook, error) {
	log.Debug().Str("folder_id", folderID).Msg("Fetching workbooks from Drive folder")

	var workbooks []ingest.Workbook

	subfolders, err := c.listChildren(ctx, folderID, mimeFolder)
	if err != nil {
		return nil, fmt.Errorf("list subfolders of %s: %w", folderID, err)
	}
	for _, folder := range subfolders {
		sub, err := c.FetchFolderWorkbooks(ctx, folder.Id)
		if err != nil {
			log.Warn().
				Err(err).
				Str("folder", folder.Name).
				Msg("Failed to fetch subfolder, skipping")
			continue
		}
		workbooks = append(workbooks, sub...)
	}

	query := fmt.Sprintf("'%s' in parents and (mimeType='%s' or mimeType='%s') and trashed=false",
		folderID, mimeGoogleSheet, mimeXLSX)
	files, err := c.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spreadsheets of %s: %w", folderID, err)
	}

	for _, file := range files {
		data, err := retry.WithRetry(ctx, config.DefaultResilienceConfig.DriveFetch, func(ctx context.Context) ([]byte, error) {
			return c.download(ctx, file)
		})
		if err != nil {
			log.Warn().
				Err(err).
				Str("file", file.Name).
				Msg("Failed to download spreadsheet, skipping")
			continue
		}

		name := file.Name
		if file.MimeType == mimeGoogleSheet {
			name += ".xlsx"
		}
		workbooks = append(workbooks, ingest.Workbook{Name: name, Data: data})
		log.Info().Str("file", name).Int("bytes", len(data)).Msg("Fetched spreadsheet")
	}

	log.Debug().
		Str("folder_id", folderID).
		Int("workbooks", len(workbooks)).
		Msg("Finished Drive folder fetch")

	return workbooks, nil
}

func (c *Client) listChildren(ctx context.Context, folderID, mimeType string) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, mimeType)
	return c.list(ctx, query)
}

func (c *Client) list(ctx context.Context, query string) ([]*drive.File, error) {
	var files []*drive.File
	pageToken := ""
	for {
		call := c.service.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		files = append(files, resp.Files...)
		if resp.NextPageToken == "" {
			return files, nil
		}
		pageToken = resp.NextPageToken
	}
}

// download fetches the file body, exporting native Google Sheets to
// xlsx and downloading uploaded .xlsx files directly.
func (c *Client) download(ctx context.Context, file *drive.File) ([]byte, error) {
	if file.MimeType == mimeGoogleSheet {
		res, err := c.service.Files.Export(file.Id, mimeXLSX).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to export sheet %s: %w", file.Name, err)
		}
		defer res.Body.Close()
		return io.ReadAll(res.Body)
	}

	res, err := c.service.Files.Get(file.Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", file.Name, err)
	}
	defer res.Body.Close()
	return io.ReadAll(res.Body)
}
