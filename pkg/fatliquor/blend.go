package fatliquor

// blendOils combines the recipe's oils into one offer-weighted mixture record.
// Only positions with a positive offer participate, so unused recipe slots
// never reach a denominator. The returned note is the dominant (largest-offer)
// oil's, since that product defines the handle of the blend.
func (c *Calculator) blendOils(oils []OilDose) (blend OilSpec, totalPct float64, err error) {
	var dominant float64
	for _, dose := range oils {
		if dose.OfferPct <= 0 {
			continue
		}
		spec, err := c.tables.Oil(dose.Name)
		if err != nil {
			return OilSpec{}, 0, err
		}
		w := dose.OfferPct
		totalPct += w
		blend.Stability += spec.Stability * w
		blend.PenetrationBase += spec.PenetrationBase * w
		blend.Softness += spec.Softness * w
		blend.CloudPointC += spec.CloudPointC * w
		blend.SpueFactor += spec.SpueFactor * w
		blend.GreaseDrag += spec.GreaseDrag * w
		if w > dominant {
			dominant = w
			blend.Note = spec.Note
		}
	}
	if totalPct <= 0 {
		return OilSpec{}, 0, ErrNoOilOffer
	}
	blend.Stability /= totalPct
	blend.PenetrationBase /= totalPct
	blend.Softness /= totalPct
	blend.CloudPointC /= totalPct
	blend.SpueFactor /= totalPct
	blend.GreaseDrag /= totalPct
	return blend, totalPct, nil
}
