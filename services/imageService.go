package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"fmt"
)

// ImageService tracks medical images by storage reference. The file
// bytes are handled by the file-storage collaborator before the core is
// involved.
type ImageService struct {
	imageRepo    *repositories.MedicalImageRepository
	patientRepo  *repositories.PatientRepository
	activityRepo *repositories.ActivityRepository
}

func NewImageService(
	imageRepo *repositories.MedicalImageRepository,
	patientRepo *repositories.PatientRepository,
	activityRepo *repositories.ActivityRepository,
) *ImageService {
	return &ImageService{imageRepo: imageRepo, patientRepo: patientRepo, activityRepo: activityRepo}
}

// Upload records a stored file against a patient. An empty image type
// defaults to "other".
func (s *ImageService) Upload(actor *models.User, patientID, filename, originalName, imageType string) (*models.MedicalImage, error) {
	if _, ok := s.patientRepo.GetByID(patientID); !ok {
		return nil, utils.NotFoundError("patient not found")
	}
	if filename == "" {
		return nil, utils.ValidationError("no file uploaded")
	}
	if imageType == "" {
		imageType = models.ImageOther
	}

	image := s.imageRepo.Create(&models.MedicalImage{
		PatientID:    patientID,
		Filename:     filename,
		OriginalName: originalName,
		ImageType:    imageType,
		UploadedBy:   actor.ID,
	})

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   patientID,
		Action:      models.ActionImageUploaded,
		Description: fmt.Sprintf("Uploaded %s image: %s", imageType, image.OriginalName),
		Metadata:    map[string]string{"imageId": image.ID, "imageType": imageType},
	})
	return image, nil
}

// Delete removes an image record and returns it so the caller can clean
// up the stored file. Deleting an unknown id yields NotFound and appends
// nothing to the audit trail.
func (s *ImageService) Delete(actor *models.User, id string) (*models.MedicalImage, error) {
	image, ok := s.imageRepo.GetByID(id)
	if !ok {
		return nil, utils.NotFoundError("image not found")
	}
	if !s.imageRepo.Delete(id) {
		return nil, utils.NotFoundError("image not found")
	}

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   image.PatientID,
		Action:      models.ActionImageDeleted,
		Description: fmt.Sprintf("Deleted medical image: %s", image.OriginalName),
		Metadata:    map[string]string{"imageId": image.ID},
	})
	return image, nil
}
