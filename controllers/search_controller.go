package controllers

import (
	"sort"
	"strings"
	"sync"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách tên khách duy nhất cho closestmatch
func prepareNameList(guests []models.Guest) []string {
	uniqueValues := make(map[string]bool)
	for _, g := range guests {
		if g.NameWithInitials != "" {
			uniqueValues[normalizeInput(g.NameWithInitials)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một khách dựa trên query
func calculateGuestScore(query string, g models.Guest, cmName *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(g.NameWithInitials)
	if normalizedName != "" {
		if strings.Contains(normalizedName, normalizedQuery) {
			score += 20
		} else if cmName.Closest(normalizedQuery) == normalizedName &&
			// Closest luôn trả một phần tử kể cả với query rác, nên phải
			// chặn thêm bằng ngưỡng tương đồng
			calculateSimilarity(normalizedQuery, normalizedName) > 0.4 {
			score += 13
		} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
			score += 10
		}
	}

	if g.GRCNumber != "" && strings.Contains(normalizeInput(g.GRCNumber), normalizedQuery) {
		score += 15
	}
	if g.PassportNIC != "" && strings.Contains(normalizeInput(g.PassportNIC), normalizedQuery) {
		score += 15
	}
	if g.MobileNumber != "" && strings.Contains(g.MobileNumber, strings.TrimSpace(query)) {
		score += 12
	}
	if g.ReservationNumber != "" && strings.Contains(normalizeInput(g.ReservationNumber), normalizedQuery) {
		score += 8
	}
	for _, rn := range g.RoomNumbers {
		if normalizeInput(rn) == normalizedQuery {
			score += 6
			break
		}
	}

	return score
}

func filterAndScoreGuests(query string, guests []models.Guest, cmName *closestmatch.ClosestMatch) []dto.ScoredGuest {
	var scored []dto.ScoredGuest
	scoreCh := make(chan dto.ScoredGuest, len(guests))
	var wg sync.WaitGroup

	for _, g := range guests {
		wg.Add(1)
		go func(g models.Guest) {
			defer wg.Done()
			score := calculateGuestScore(query, g, cmName)
			if score > 0 {
				scoreCh <- dto.ScoredGuest{Guest: g, Score: score}
			}
		}(g)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sg := range scoreCh {
		scored = append(scored, sg)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Guest.GRCNumber < scored[j].Guest.GRCNumber
	})
	return scored
}

// SearchGuests tìm khách theo tên, số GRC, hộ chiếu/NIC, số điện thoại
// hoặc số phòng với so khớp gần đúng.
func SearchGuests(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Search query is required")
		return
	}

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(guests) == 0 {
		response.Success(c, []dto.ScoredGuest{})
		return
	}

	cmName := createMatcher(prepareNameList(guests))
	results := filterAndScoreGuests(query, guests, cmName)
	if results == nil {
		results = []dto.ScoredGuest{}
	}

	response.Success(c, results)
}
