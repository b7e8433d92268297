package service

import (
	"log"

	areaModel "palika_backend/internals/features/areas/model"
)

/* ====================== AREA STATUS ====================== */

// AdvanceAreaStatus moves an area from newly_assigned to ongoing_survey on
// the first submission that resolves to the enumerator the area is assigned
// to. The status guard in the WHERE clause makes re-fires a no-op; every
// other transition belongs to the dashboard workflow.
func (s *Syncer) AdvanceAreaStatus(refs CrossRefResult) {
	if !refs.IsEnumeratorValid || !refs.IsAreaValid {
		return
	}
	if refs.AreaAssignee == nil || refs.EnumeratorID == nil || *refs.AreaAssignee != *refs.EnumeratorID {
		return
	}

	res := s.DB.Model(&areaModel.AreaModel{}).
		Where("area_id = ? AND area_assigned_to = ? AND area_status = ?",
			refs.AreaID, refs.EnumeratorID, areaModel.AreaStatusNewlyAssigned).
		Update("area_status", areaModel.AreaStatusOngoingSurvey)
	if res.Error != nil {
		log.Printf("[SYNC] area status advance failed area=%s: %v", refs.AreaID, res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[SYNC] area=%s -> %s", refs.AreaID, areaModel.AreaStatusOngoingSurvey)
	}
}
