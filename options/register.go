package options

import "namelist-generator/internal/engine"

// Register adds every derivation encoder to reg.
func Register(reg *engine.Registry) {
	reg.Add("specie_related_values", SpecieRelatedValues)
	reg.Add("starting_magnetization", StartingMagnetization)
	reg.Add("lda_plus_u_flag", LdaPlusUFlag)
	reg.Add("system_nspin", SystemNspin)
	reg.Add("ibrav_zero", IbravZero)
	reg.Add("neb_system_nat", NebSystemNat)
	reg.Add("ha2ry", Ha2Ry)
	reg.Add("amass", Amass)
	reg.Add("electric_field", ElectricField)
	reg.Add("cell_dofree", CellDofree)
	reg.Add("boolean_flag", BooleanFlag)
	reg.Add("td_what", TdWhat)
	reg.Add("xspectra_component", XSpectraComponent)
}

// RegisterDecoders adds every value decoder to reg.
func RegisterDecoders(reg *engine.DecoderRegistry) {
	reg.Add("lower", Lower)
	reg.Add("upper", Upper)
	reg.Add("list", AsList)
	reg.Add("floats", FloatList)
}
