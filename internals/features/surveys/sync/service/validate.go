package service

import (
	"errors"
	"log"
	"strings"
	"time"

	areaModel "palika_backend/internals/features/areas/model"
	userModel "palika_backend/internals/features/users/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrossRefResult aggregates the four independent checks. Flags are always
// concrete true/false; a failed lookup is a false flag plus a nil id, never an
// error — a submission with an unknown ward must still reach production so a
// human can triage it.
type CrossRefResult struct {
	EnumeratorID  *uuid.UUID
	WardID        *int
	AreaID        *uuid.UUID
	AreaAssignee  *uuid.UUID
	BuildingToken *string

	IsEnumeratorValid    bool
	IsWardValid          bool
	IsAreaValid          bool
	IsBuildingTokenValid bool
}

/* ====================== VALIDATOR ====================== */

// ValidateCrossRefs runs every check regardless of the others' outcome.
func (s *Syncer) ValidateCrossRefs(in CrossRefInput) CrossRefResult {
	var out CrossRefResult
	s.resolveEnumerator(in, &out)
	s.resolveWard(in, &out)
	s.resolveArea(in, &out)
	s.resolveBuildingToken(in, &out)
	return out
}

// resolveEnumerator matches the truncated id the field app embeds (first 8
// characters of the user id) against known users. substr equality instead of
// LIKE so fragments containing % or _ never act as wildcards.
func (s *Syncer) resolveEnumerator(in CrossRefInput, out *CrossRefResult) {
	frag := strings.ToLower(strings.TrimSpace(in.EnumeratorFragment))
	if len(frag) < 8 {
		return
	}
	frag = frag[:8]

	var user userModel.UserModel
	err := s.DB.
		Where("substr(LOWER(CAST(user_id AS TEXT)), 1, 8) = ?", frag).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[VALIDATE] enumerator lookup %q: %v", frag, err)
		}
		return
	}
	id := user.UserID
	out.EnumeratorID = &id
	out.IsEnumeratorValid = true
}

func (s *Syncer) resolveWard(in CrossRefInput, out *CrossRefResult) {
	if in.WardNumber == nil {
		return
	}
	var ward areaModel.WardModel
	err := s.DB.Where("ward_number = ?", *in.WardNumber).First(&ward).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[VALIDATE] ward lookup %d: %v", *in.WardNumber, err)
		}
		return
	}
	id := ward.WardNumber
	out.WardID = &id
	out.IsWardValid = true
}

func (s *Syncer) resolveArea(in CrossRefInput, out *CrossRefResult) {
	code := strings.TrimSpace(in.AreaCode)
	if code == "" {
		return
	}
	var area areaModel.AreaModel
	err := s.DB.Where("area_code = ?", code).First(&area).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[VALIDATE] area lookup %q: %v", code, err)
		}
		return
	}
	id := area.AreaID
	out.AreaID = &id
	out.AreaAssignee = area.AreaAssignedTo
	out.IsAreaValid = true
}

// resolveBuildingToken matches the first 8 characters of the submitted token
// and flips the token to allocated. The status guard in the UPDATE keeps the
// transition monotonic and a re-run a no-op.
func (s *Syncer) resolveBuildingToken(in CrossRefInput, out *CrossRefResult) {
	tok := strings.TrimSpace(in.BuildingToken)
	if len(tok) < 8 {
		return
	}
	prefix := tok[:8]

	var known areaModel.BuildingTokenModel
	err := s.DB.Where("substr(token, 1, 8) = ?", prefix).First(&known).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[VALIDATE] token lookup %q: %v", prefix, err)
		}
		return
	}

	now := time.Now()
	res := s.DB.Model(&areaModel.BuildingTokenModel{}).
		Where("token = ? AND token_status = ?", known.Token, areaModel.TokenStatusUnallocated).
		Updates(map[string]interface{}{
			"token_status": areaModel.TokenStatusAllocated,
			"allocated_at": now,
		})
	if res.Error != nil {
		log.Printf("[VALIDATE] token allocate %q: %v", known.Token, res.Error)
		// lookup succeeded, allocation is best-effort
	}

	t := known.Token
	out.BuildingToken = &t
	out.IsBuildingTokenValid = true
}
