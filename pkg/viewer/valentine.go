// pkg/viewer/valentine.go
package viewer

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"scrollwish.link/pkg/sched"
	"scrollwish.link/pkg/signature"
)

// ValentineStep akışın adım adları.
type ValentineStep string

const (
	StepProposal    ValentineStep = "proposal"
	StepCelebration ValentineStep = "celebration"
	StepFingerprint ValentineStep = "fingerprint"
	StepSignature   ValentineStep = "signature"
	StepAgreement   ValentineStep = "agreement"
	StepBouquet     ValentineStep = "bouquet"
	StepForm        ValentineStep = "form"
	StepSaved       ValentineStep = "saved"
)

const (
	// HoldDuration fingerprint basılı tutma süresi; ilerleme bu süre
	// boyunca doğrusal olarak 0'dan 100'e çıkar.
	HoldDuration = 2 * time.Second

	// holdTickInterval ilerleme güncelleme aralığı.
	holdTickInterval = 50 * time.Millisecond

	// holdCompleteDelay %100'e ulaştıktan sonra agreement'a geçmeden
	// önceki kısa bekleme.
	holdCompleteDelay = 300 * time.Millisecond

	// noEvadeRange "Hayır" düğmesinin her kaçışta piksel cinsinden
	// rastgele yer değiştirme aralığı (± değer).
	noEvadeRange = 150

	signaturePadWidth  = 400
	signaturePadHeight = 200
)

// ValentineViewer tek dallanma noktalı doğrusal akış:
// proposal -> celebration -> (fingerprint | signature) -> agreement ->
// bouquet -> form -> saved. Fingerprint/signature seçimi viewport
// genişliğine bakar ve adım aktifken resize ile yeniden değerlendirilir.
type ValentineViewer struct {
	mu      sync.Mutex
	content CardContent
	vctx    Context

	step ValentineStep

	noOffsetX int
	noOffsetY int

	holdProgress float64
	holdHandle   sched.Handle
	holdDelay    sched.Handle

	pad          *signature.Pad
	signaturePNG []byte

	availableOn14 *bool
	formTime      string
	formVenue     string
	formDate      string

	response   *ResponsePayload
	submitting bool
	closed     bool
}

func NewValentineViewer(content CardContent, vctx Context) *ValentineViewer {
	v := &ValentineViewer{
		content:  content,
		vctx:     vctx,
		step:     StepProposal,
		pad:      signature.NewPad(signaturePadWidth, signaturePadHeight),
		response: vctx.Existing,
	}
	// Alıcı zaten yanıtladıysa terminal state'ten başlanır; sahip her
	// zaman baştan oynatabilir.
	if vctx.Existing != nil && !vctx.IsOwner {
		v.step = StepSaved
	}
	return v
}

func (v *ValentineViewer) ContentLayout() Layout { return LayoutValentine }

// Step makinenin o anki adımı.
func (v *ValentineViewer) Step() ValentineStep {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.step
}

// SelectYes proposal'dan celebration'a koşulsuz geçiş.
func (v *ValentineViewer) SelectYes() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.step != StepProposal {
		return
	}
	v.step = StepCelebration
}

// EvadeNo "Hayır" düğmesine her yaklaşmada yeni rastgele bir ofset üretir;
// düğme hiçbir zaman seçilemez. Döndürülen değerler piksel ofsetleridir.
func (v *ValentineViewer) EvadeNo() (dx, dy int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.noOffsetX = rand.Intn(2*noEvadeRange+1) - noEvadeRange
	v.noOffsetY = rand.Intn(2*noEvadeRange+1) - noEvadeRange
	return v.noOffsetX, v.noOffsetY
}

// AdvanceFromCelebration viewport sınıfına göre çatala gider: desktop ise
// signature, değilse fingerprint.
func (v *ValentineViewer) AdvanceFromCelebration() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.step != StepCelebration {
		return
	}
	if v.vctx.Viewport.Width() > DesktopMinWidth {
		v.step = StepSignature
	} else {
		v.step = StepFingerprint
	}
}

// HandleResize çatal adımlarından biri aktifken viewport sınıfı değişirse
// adımı diğer kola taşır; yarım kalan hold ilerlemesi sıfırlanır.
func (v *ValentineViewer) HandleResize() {
	v.mu.Lock()
	defer v.mu.Unlock()

	desktop := v.vctx.Viewport.Width() > DesktopMinWidth
	switch {
	case v.step == StepFingerprint && desktop:
		v.cancelHoldLocked()
		v.holdProgress = 0
		v.step = StepSignature
	case v.step == StepSignature && !desktop:
		v.step = StepFingerprint
	}
}

// HoldStart basılı tutma jesti başladığında ilerleme sayacını kurar.
func (v *ValentineViewer) HoldStart() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.step != StepFingerprint || v.holdHandle != nil || v.closed {
		return
	}
	step := 100 * float64(holdTickInterval) / float64(HoldDuration)
	v.holdHandle = v.vctx.Clock.SetInterval(holdTickInterval, func() {
		v.holdTick(step)
	})
}

// HoldEnd jest erken bırakılırsa ilerleme tamamen sıfırlanır; kısmi hak yok.
func (v *ValentineViewer) HoldEnd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.holdProgress >= 100 {
		return
	}
	v.cancelHoldLocked()
	v.holdProgress = 0
}

// HoldProgress 0-100 arası ilerleme.
func (v *ValentineViewer) HoldProgress() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.holdProgress
}

func (v *ValentineViewer) holdTick(step float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.step != StepFingerprint || v.closed {
		v.cancelHoldLocked()
		return
	}
	v.holdProgress += step
	if v.holdProgress < 100 {
		return
	}
	v.holdProgress = 100
	v.cancelHoldLocked()
	// Tamamlandıktan kısa süre sonra otomatik ilerle.
	v.holdDelay = v.vctx.Clock.SetTimeout(holdCompleteDelay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.step == StepFingerprint && !v.closed {
			v.step = StepAgreement
		}
	})
}

func (v *ValentineViewer) cancelHoldLocked() {
	if v.holdHandle != nil {
		v.holdHandle.Cancel()
		v.holdHandle = nil
	}
}

// Pad imza yüzeyi; signature adımında host pointer olaylarını buna iletir.
func (v *ValentineViewer) Pad() *signature.Pad {
	return v.pad
}

// ClearSignature çizimi siler.
func (v *ValentineViewer) ClearSignature() {
	v.pad.Clear()
}

// ConfirmSignature çizimi PNG olarak dışa aktarır ve agreement'a ilerler.
// Boş yüzey de geçerli imzadır.
func (v *ValentineViewer) ConfirmSignature() error {
	v.mu.Lock()
	if v.step != StepSignature {
		v.mu.Unlock()
		return errors.New("imza adimi aktif degil")
	}
	v.mu.Unlock()

	img, err := v.pad.ExportPNG()
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.step != StepSignature {
		return nil
	}
	v.signaturePNG = img
	v.step = StepAgreement
	return nil
}

// SignatureImage agreement sahnesinde gösterilecek imza; fingerprint
// kolundan gelindiyse nil'dir ve varsayılan grafik kullanılır.
func (v *ValentineViewer) SignatureImage() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.signaturePNG
}

// AdvanceFromAgreement tek ileri aksiyon.
func (v *ValentineViewer) AdvanceFromAgreement() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.step == StepAgreement {
		v.step = StepBouquet
	}
}

// AdvanceFromBouquet tek dokunuşla forma geçer.
func (v *ValentineViewer) AdvanceFromBouquet() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.step == StepBouquet {
		v.step = StepForm
	}
}

// SetAvailability 14 Şubat dallanması; seçim yapılmadan submit kilitlidir.
func (v *ValentineViewer) SetAvailability(on14 bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.availableOn14 = &on14
}

func (v *ValentineViewer) SetFormTime(t string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formTime = t
}

func (v *ValentineViewer) SetFormVenue(venue string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formVenue = venue
}

// SetFormDate yalnızca "hayır" kolunda anlamlıdır.
func (v *ValentineViewer) SetFormDate(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formDate = date
}

// CanSubmit yes/no seçimi yapılmış mı?
func (v *ValentineViewer) CanSubmit() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.step == StepForm && v.availableOn14 != nil
}

// Submit yanıtı host'a kaydettirir ve onay gelince saved'e geçer. Kayıt
// başarısız olursa form adımında kalınır; tekrar submit bir güncellemedir,
// asla ikinci bir kayıt üretmez.
func (v *ValentineViewer) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.step != StepForm || v.closed {
		v.mu.Unlock()
		return errors.New("form adimi aktif degil")
	}
	if v.availableOn14 == nil {
		v.mu.Unlock()
		return errors.New("musaitlik secimi yapilmadi")
	}
	if v.submitting {
		v.mu.Unlock()
		return errors.New("kayit zaten surede")
	}

	on14 := *v.availableOn14
	payload := ResponsePayload{
		AvailableOn14: &on14,
		Time:          v.formTime,
		Venue:         v.formVenue,
		RespondedAt:   v.vctx.Clock.Now(),
	}
	if on14 {
		payload.CustomDate = CustomDateFixed
	} else {
		payload.CustomDate = v.formDate
	}
	if err := payload.Validate(LayoutValentine); err != nil {
		v.mu.Unlock()
		return err
	}
	v.submitting = true
	save := v.vctx.SaveResponse
	v.mu.Unlock()

	err := save(ctx, payload)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitting = false
	if err != nil {
		return err
	}
	v.response = &payload
	v.step = StepSaved
	return nil
}

// SavedResponse terminal sahnede salt okunur gösterilen yanıt.
func (v *ValentineViewer) SavedResponse() *ResponsePayload {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.response
}

// Replay akışı baştan başlatır. Kayıtlı yanıt silinmez; formdan gelecek
// ikinci submit mevcut kaydın üzerine yazar.
func (v *ValentineViewer) Replay() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.cancelHoldLocked()
	if v.holdDelay != nil {
		v.holdDelay.Cancel()
		v.holdDelay = nil
	}
	v.holdProgress = 0
	v.signaturePNG = nil
	v.availableOn14 = nil
	v.formTime = ""
	v.formVenue = ""
	v.formDate = ""
	v.pad.Clear()
	v.step = StepProposal
}

// Close tüm zamanlayıcıları iptal eder; her çıkış yolunda güvenlidir.
func (v *ValentineViewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	v.cancelHoldLocked()
	if v.holdDelay != nil {
		v.holdDelay.Cancel()
		v.holdDelay = nil
	}
}
